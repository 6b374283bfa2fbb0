package storage

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
)

type Object struct {
	Data []byte
	Opts UploadOptions
}

// Memory keeps objects in process. It records every call, which makes it
// the store of choice for tests and throwaway local runs.
type Memory struct {
	BaseURL string
	// FailUpload and FailRemove, when set, are returned by the next calls.
	FailUpload error
	FailRemove error

	mu      sync.Mutex
	objects map[string]Object
	removed []string
}

func NewMemory(baseURL string) *Memory {
	return &Memory{BaseURL: baseURL, objects: map[string]Object{}}
}

func key(bucket, path string) string { return bucket + "/" + path }

func (m *Memory) Upload(ctx context.Context, bucket, name string, r io.Reader, opts UploadOptions) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailUpload != nil {
		return "", m.FailUpload
	}
	if _, exists := m.objects[key(bucket, name)]; exists && !opts.Upsert {
		return "", fmt.Errorf("object %s already exists", key(bucket, name))
	}
	m.objects[key(bucket, name)] = Object{Data: data, Opts: opts}
	return name, nil
}

func (m *Memory) PublicURL(bucket, path string) string {
	if path == "" {
		return ""
	}
	return m.BaseURL + "/" + key(bucket, path)
}

func (m *Memory) Remove(ctx context.Context, bucket string, paths ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRemove != nil {
		return m.FailRemove
	}
	for _, p := range paths {
		delete(m.objects, key(bucket, p))
		m.removed = append(m.removed, key(bucket, p))
	}
	return nil
}

func (m *Memory) Get(bucket, path string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[key(bucket, path)]
	return o, ok
}

// Keys lists stored objects as "bucket/path", sorted.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.removed...)
}
