package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary maps each bucket to a folder. Cloudinary sets its own cache
// headers, so UploadOptions.CacheControl is not forwarded.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloud, key, secret string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloud, key, secret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func resourceType(contentType, name string) string {
	if strings.HasPrefix(contentType, "video/") {
		return "video"
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp4", ".webm", ".mov":
		return "video"
	}
	return "image"
}

func publicID(bucket, name string) string {
	return bucket + "/" + strings.TrimSuffix(name, filepath.Ext(name))
}

func (s *Cloudinary) Upload(ctx context.Context, bucket, name string, r io.Reader, opts UploadOptions) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID(bucket, name),
		ResourceType: resourceType(opts.ContentType, name),
		Overwrite:    api.Bool(opts.Upsert),
		Invalidate:   api.Bool(opts.Upsert),
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return name, nil
}

func (s *Cloudinary) PublicURL(bucket, path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/%s/upload/%s/%s",
		s.cld.Config.Cloud.CloudName, resourceType("", path), bucket, path)
}

func (s *Cloudinary) Remove(ctx context.Context, bucket string, paths ...string) error {
	var errs []error
	for _, p := range paths {
		res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
			PublicID:     publicID(bucket, p),
			ResourceType: resourceType("", p),
			Invalidate:   api.Bool(true),
		})
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("remove %s/%s: %w", bucket, p, err))
		case res.Error.Message != "":
			errs = append(errs, fmt.Errorf("remove %s/%s: %s", bucket, p, res.Error.Message))
		}
	}
	return errors.Join(errs...)
}
