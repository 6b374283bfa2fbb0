package hook

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"nomad_admin/form"
	"nomad_admin/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Columns a partial update may never write.
var immutable = []string{"id", "space_id", "created_at"}

// withFiles is implemented by rows that reference stored objects.
type withFiles interface {
	Files() []string
}

type crud[M any] struct {
	*State
	db     *gorm.DB
	store  storage.Store
	bucket string
	order  string
}

func newCrud[M any](db *gorm.DB, store storage.Store, bucket, order string) *crud[M] {
	return &crud[M]{State: &State{}, db: db, store: store, bucket: bucket, order: order}
}

func (h *crud[M]) name() string {
	var m M
	return fmt.Sprintf("%T", m)
}

func (h *crud[M]) Create(ctx context.Context, row *M) *M {
	h.begin()
	if err := h.db.WithContext(ctx).Create(row).Error; err != nil {
		h.fail("create "+h.name(), err)
		return nil
	}
	h.done(true)
	return row
}

func (h *crud[M]) List(ctx context.Context) []M {
	return h.list(ctx, "")
}

func (h *crud[M]) list(ctx context.Context, query string, args ...any) []M {
	h.begin()
	rows := []M{}
	tx := h.db.WithContext(ctx).Order(h.order)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(&rows).Error; err != nil {
		h.fail("list "+h.name(), err)
		return nil
	}
	h.done(false)
	return rows
}

func (h *crud[M]) Get(ctx context.Context, id string) *M {
	h.begin()
	row := new(M)
	if err := h.db.WithContext(ctx).Where("id = ?", id).First(row).Error; err != nil {
		h.fail("get "+h.name(), err)
		return nil
	}
	h.done(false)
	return row
}

func (h *crud[M]) Count(ctx context.Context) int64 {
	h.begin()
	var n int64
	if err := h.db.WithContext(ctx).Model(new(M)).Count(&n).Error; err != nil {
		h.fail("count "+h.name(), err)
		return 0
	}
	h.done(false)
	return n
}

// Update applies a partial update and returns the refreshed row.
func (h *crud[M]) Update(ctx context.Context, id string, changes map[string]any) *M {
	h.begin()
	changes = lo.OmitByKeys(changes, immutable)
	res := h.db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		h.fail("update "+h.name(), res.Error)
		return nil
	}
	if res.RowsAffected == 0 {
		h.fail("update "+h.name(), gorm.ErrRecordNotFound)
		return nil
	}
	row := new(M)
	if err := h.db.WithContext(ctx).Where("id = ?", id).First(row).Error; err != nil {
		h.fail("update "+h.name(), err)
		return nil
	}
	h.done(true)
	return row
}

// Delete removes the row, then makes a best-effort attempt at removing its
// stored files.
func (h *crud[M]) Delete(ctx context.Context, id string) bool {
	h.begin()
	row := new(M)
	if err := h.db.WithContext(ctx).Where("id = ?", id).First(row).Error; err != nil {
		h.fail("delete "+h.name(), err)
		return false
	}
	if err := h.db.WithContext(ctx).Where("id = ?", id).Delete(new(M)).Error; err != nil {
		h.fail("delete "+h.name(), err)
		return false
	}
	if f, ok := any(row).(withFiles); ok {
		h.removeFiles(ctx, f.Files()...)
	}
	h.done(true)
	return true
}

func (h *crud[M]) removeFiles(ctx context.Context, paths ...string) {
	paths = lo.Compact(paths)
	if len(paths) == 0 || h.store == nil {
		return
	}
	if err := h.store.Remove(ctx, h.bucket, paths...); err != nil {
		log.Warnf("remove files %v from %s: %v", paths, h.bucket, err)
	}
}

// UploadFile stores a pending upload under a generated name. A value that is
// not pending is returned as is, so stored paths survive edits and an empty
// value clears the column.
func (h *crud[M]) UploadFile(ctx context.Context, f form.File) (string, bool) {
	if !f.IsPending() {
		return f.Path, true
	}
	h.begin()
	path, err := upload(ctx, h.store, h.bucket, f)
	if err != nil {
		h.fail("upload to "+h.bucket, err)
		return "", false
	}
	h.done(false)
	return path, true
}

func (h *crud[M]) PublicURL(path string) string {
	if path == "" || h.store == nil {
		return ""
	}
	return h.store.PublicURL(h.bucket, path)
}

// Discard removes a previously stored file once the row points elsewhere.
func (h *crud[M]) Discard(ctx context.Context, old *string, current string) {
	if old == nil || *old == "" || *old == current {
		return
	}
	h.removeFiles(ctx, *old)
}

// Resolver adapts the store for form previews.
func (h *crud[M]) Resolver() form.URLResolver {
	if h.store == nil {
		return nil
	}
	return h.store.PublicURL
}

// ObjectName is a base36 millisecond timestamp, eight random characters and
// the original extension.
func ObjectName(filename string, now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36) + "-" +
		strings.ReplaceAll(uuid.NewString(), "-", "")[:8] +
		strings.ToLower(filepath.Ext(filename))
}

func upload(ctx context.Context, store storage.Store, bucket string, f form.File) (string, error) {
	src, err := f.Upload.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	ct, err := f.ContentType()
	if err != nil {
		ct = f.Upload.Header.Get("Content-Type")
	}
	return store.Upload(ctx, bucket, ObjectName(f.Upload.Filename, time.Now()), src, storage.UploadOptions{
		ContentType:  ct,
		CacheControl: "3600",
		Upsert:       true,
	})
}
