package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Disk keeps every bucket as a directory under Root. Files are served by the
// HTTP layer under BaseURL.
type Disk struct {
	Root    string
	BaseURL string
}

func NewDisk(root, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Disk{Root: root, BaseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (d *Disk) Upload(ctx context.Context, bucket, name string, r io.Reader, opts UploadOptions) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	if err := checkName(bucket); err != nil {
		return "", err
	}
	dir := filepath.Join(d.Root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.Upsert {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(filepath.Join(dir, name), flags, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, ctx.Err()
}

func (d *Disk) PublicURL(bucket, path string) string {
	if path == "" {
		return ""
	}
	return d.BaseURL + "/" + bucket + "/" + path
}

func (d *Disk) Remove(ctx context.Context, bucket string, paths ...string) error {
	var errs []error
	for _, p := range paths {
		if err := checkName(p); err != nil {
			errs = append(errs, err)
			continue
		}
		err := os.Remove(filepath.Join(d.Root, bucket, p))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
