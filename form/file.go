package form

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	_ "golang.org/x/image/webp"
)

// File is the value of a file field: either a pending upload or the path of
// an already stored object, never both.
type File struct {
	Upload *multipart.FileHeader
	Path   string
}

func Pending(fh *multipart.FileHeader) File { return File{Upload: fh} }

func Stored(path string) File { return File{Path: path} }

func (f File) IsPending() bool { return f.Upload != nil }

func (f File) IsZero() bool { return f.Upload == nil && f.Path == "" }

// Ext returns the lower-cased extension of the upload, without the dot.
func (f File) Ext() string {
	if f.Upload == nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Upload.Filename)), ".")
}

// ContentType sniffs the upload's content.
func (f File) ContentType() (string, error) {
	if f.Upload == nil {
		return "", errors.New("no pending upload")
	}
	src, err := f.Upload.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	m, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// FileRule is parsed from a `file` struct tag, e.g.
// `file:"required,max=5242880,types=image/jpeg image/png,dims=200x200-4096x4096"`.
type FileRule struct {
	Required bool
	MaxBytes int64
	Types    []string
	MinW     int
	MinH     int
	MaxW     int
	MaxH     int
}

func ParseFileRule(tag string) (FileRule, error) {
	var r FileRule
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, _ := strings.Cut(part, "=")
		switch key {
		case "required":
			r.Required = true
		case "max":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return r, fmt.Errorf("file rule max: %w", err)
			}
			r.MaxBytes = n
		case "types":
			r.Types = strings.Fields(val)
		case "dims":
			if _, err := fmt.Sscanf(val, "%dx%d-%dx%d", &r.MinW, &r.MinH, &r.MaxW, &r.MaxH); err != nil {
				return r, fmt.Errorf("file rule dims %q: %w", val, err)
			}
		default:
			return r, fmt.Errorf("unknown file rule %q", key)
		}
	}
	return r, nil
}

// Check returns a user-facing message for the first violated constraint, or "".
// Size is checked before type, type before dimensions.
func (r FileRule) Check(f File) string {
	if !f.IsPending() {
		if r.Required && f.Path == "" {
			return "Please select a file"
		}
		return ""
	}
	if r.MaxBytes > 0 && f.Upload.Size > r.MaxBytes {
		return "File size must be less than " + FormatBytes(r.MaxBytes)
	}
	ct, err := f.ContentType()
	if err != nil {
		return "The file could not be read"
	}
	if len(r.Types) > 0 && !r.allows(ct) {
		return fmt.Sprintf("Please upload a file in %s format", joinOr(r.extensions()))
	}
	if r.MaxW > 0 && strings.HasPrefix(ct, "image/") {
		w, h, err := dimensions(f)
		if err != nil || w < r.MinW || h < r.MinH || w > r.MaxW || h > r.MaxH {
			return fmt.Sprintf("The image dimensions are invalid. Please upload an image between %dx%d and %dx%d pixels.",
				r.MinW, r.MinH, r.MaxW, r.MaxH)
		}
	}
	return ""
}

func (r FileRule) allows(contentType string) bool {
	m := mimetype.Lookup(contentType)
	return lo.ContainsBy(r.Types, func(t string) bool {
		if m != nil {
			return m.Is(t)
		}
		return t == contentType
	})
}

func (r FileRule) extensions() []string {
	return lo.Uniq(lo.Map(r.Types, func(t string, _ int) string {
		_, sub, _ := strings.Cut(t, "/")
		return sub
	}))
}

func dimensions(f File) (int, int, error) {
	src, err := f.Upload.Open()
	if err != nil {
		return 0, 0, err
	}
	defer src.Close()
	cfg, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// FormatBytes renders a byte count the way limits are shown to users ("5 MB").
func FormatBytes(n int64) string {
	const unit = 1024
	switch {
	case n >= unit*unit*unit:
		return trimFloat(float64(n)/(unit*unit*unit)) + " GB"
	case n >= unit*unit:
		return trimFloat(float64(n)/(unit*unit)) + " MB"
	case n >= unit:
		return trimFloat(float64(n)/unit) + " KB"
	}
	return strconv.FormatInt(n, 10) + " B"
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
