package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"nomad_admin/config"
)

// Buckets used by the admin.
const (
	BucketSpaces = "spaces"
	BucketEvents = "events"
	BucketBlogs  = "blogs"
)

type UploadOptions struct {
	ContentType  string
	CacheControl string
	Upsert       bool
}

// Store is a bucketed object store. Paths returned by Upload are relative
// to the bucket and are what rows persist.
type Store interface {
	Upload(ctx context.Context, bucket, name string, r io.Reader, opts UploadOptions) (string, error)
	PublicURL(bucket, path string) string
	Remove(ctx context.Context, bucket string, paths ...string) error
}

// New picks the driver from STORAGE_DRIVER (cloudinary, disk or memory).
func New() (Store, error) {
	switch driver := config.String("STORAGE_DRIVER", "disk"); driver {
	case "cloudinary":
		return NewCloudinary(
			config.Config("CLOUDINARY_CLOUD_NAME"),
			config.Config("CLOUDINARY_API_KEY"),
			config.Config("CLOUDINARY_API_SECRET"),
		)
	case "disk":
		return NewDisk(config.String("STORAGE_DIR", "./uploads"), config.String("STORAGE_URL", "/storage"))
	case "memory":
		return NewMemory("/storage"), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func checkName(name string) error {
	if name == "" || filepath.Base(name) != name || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid object name %q", name)
	}
	return nil
}

// Default is the store wired at startup.
var Default Store

// URL resolves a nullable stored path against Default.
func URL(bucket string, path *string) string {
	if path == nil || *path == "" || Default == nil {
		return ""
	}
	return Default.PublicURL(bucket, *path)
}
