package hook

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"nomad_admin/form"
	"nomad_admin/model"
	"nomad_admin/storage"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrIncompleteOrder rejects an order that is not a permutation of the gallery.
var ErrIncompleteOrder = errors.New("incomplete image order")

// ReorderConcurrency bounds the position updates in flight.
var ReorderConcurrency = 8

type SpaceImage struct {
	*crud[model.SpaceImage]
}

func NewSpaceImage(db *gorm.DB, store storage.Store) *SpaceImage {
	return &SpaceImage{crud: newCrud[model.SpaceImage](db, store, storage.BucketSpaces, "position asc")}
}

func (h *SpaceImage) ListBySpace(ctx context.Context, spaceID string) []model.SpaceImage {
	return h.list(ctx, "space_id = ?", spaceID)
}

// Upload stores the file and appends it to the end of the gallery.
func (h *SpaceImage) Upload(ctx context.Context, spaceID string, f form.File, alt string) *model.SpaceImage {
	h.begin()
	if !f.IsPending() {
		h.fail("upload space image", errors.New("no file selected"))
		return nil
	}
	path, err := upload(ctx, h.store, h.bucket, f)
	if err != nil {
		h.fail("upload space image", err)
		return nil
	}
	img := model.SpaceImage{SpaceID: spaceID, Path: path, Alt: alt}
	err = h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&model.SpaceImage{}).Where("space_id = ?", spaceID).
			Select("COALESCE(MAX(position), 0)").Scan(&last).Error; err != nil {
			return err
		}
		img.Position = last + 1
		return tx.Create(&img).Error
	})
	if err != nil {
		h.removeFiles(ctx, path)
		h.fail("upload space image", err)
		return nil
	}
	h.done(true)
	return &img
}

func (h *SpaceImage) UpdateAlt(ctx context.Context, id, alt string) *model.SpaceImage {
	return h.Update(ctx, id, map[string]any{"alt": alt})
}

// Delete removes the image and closes the gap it leaves in the positions.
func (h *SpaceImage) Delete(ctx context.Context, id string) bool {
	h.begin()
	var img model.SpaceImage
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&img).Error; err != nil {
			return err
		}
		if err := tx.Delete(&img).Error; err != nil {
			return err
		}
		var rest []model.SpaceImage
		if err := tx.Where("space_id = ?", img.SpaceID).Order("position asc").Find(&rest).Error; err != nil {
			return err
		}
		for i, r := range rest {
			if r.Position == i+1 {
				continue
			}
			if err := tx.Model(&model.SpaceImage{}).Where("id = ?", r.ID).Update("position", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		h.fail("delete space image", err)
		return false
	}
	h.removeFiles(ctx, img.Path)
	h.done(true)
	return true
}

// Reorder gives the i-th id position i+1. The ids must list every image of
// the space exactly once. Updates run concurrently and are all awaited; a
// partial failure is reported as one error and is not rolled back.
func (h *SpaceImage) Reorder(ctx context.Context, spaceID string, ids []string) bool {
	h.begin()
	var current []string
	if err := h.db.WithContext(ctx).Model(&model.SpaceImage{}).
		Where("space_id = ?", spaceID).Pluck("id", &current).Error; err != nil {
		h.fail("reorder space images", err)
		return false
	}
	want := slices.Clone(ids)
	slices.Sort(want)
	slices.Sort(current)
	if !slices.Equal(want, current) {
		h.fail("reorder space images", fmt.Errorf("%w: order must list each of the %d images of the space exactly once", ErrIncompleteOrder, len(current)))
		return false
	}

	errs := make([]error, len(ids))
	var g errgroup.Group
	g.SetLimit(ReorderConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			res := h.db.WithContext(ctx).Model(&model.SpaceImage{}).
				Where("id = ? AND space_id = ?", id, spaceID).
				Update("position", i+1)
			switch {
			case res.Error != nil:
				errs[i] = fmt.Errorf("image %s: %w", id, res.Error)
			case res.RowsAffected == 0:
				errs[i] = fmt.Errorf("image %s: %w", id, gorm.ErrRecordNotFound)
			}
			return nil
		})
	}
	_ = g.Wait()

	if failed := lo.CountBy(errs, func(err error) bool { return err != nil }); failed > 0 {
		h.fail("reorder space images", fmt.Errorf("failed to reorder %d of %d images: %w", failed, len(ids), errors.Join(errs...)))
		return false
	}
	h.done(true)
	return true
}
