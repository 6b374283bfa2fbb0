package hook

import (
	"context"

	"nomad_admin/model"
	"nomad_admin/storage"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Space struct {
	*crud[model.Space]
}

func NewSpace(db *gorm.DB, store storage.Store) *Space {
	return &Space{crud: newCrud[model.Space](db, store, storage.BucketSpaces, "name asc")}
}

// Delete removes the space with its offers, attractions and gallery, then
// the stored cover and gallery files.
func (h *Space) Delete(ctx context.Context, id string) bool {
	h.begin()
	var space model.Space
	var images []model.SpaceImage
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&space).Error; err != nil {
			return err
		}
		if err := tx.Where("space_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		for _, child := range []any{&model.SpaceImage{}, &model.SpaceOffer{}, &model.SpaceAttraction{}} {
			if err := tx.Where("space_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&space).Error
	})
	if err != nil {
		h.fail("delete space", err)
		return false
	}
	paths := append(space.Files(), lo.Map(images, func(img model.SpaceImage, _ int) string { return img.Path })...)
	h.removeFiles(ctx, paths...)
	h.done(true)
	return true
}

type Offer struct {
	*crud[model.SpaceOffer]
}

func NewOffer(db *gorm.DB) *Offer {
	return &Offer{crud: newCrud[model.SpaceOffer](db, nil, "", "created_at desc")}
}

func (h *Offer) ListBySpace(ctx context.Context, spaceID string) []model.SpaceOffer {
	return h.list(ctx, "space_id = ?", spaceID)
}

type Attraction struct {
	*crud[model.SpaceAttraction]
}

func NewAttraction(db *gorm.DB) *Attraction {
	return &Attraction{crud: newCrud[model.SpaceAttraction](db, nil, "", "distance_km asc")}
}

func (h *Attraction) ListBySpace(ctx context.Context, spaceID string) []model.SpaceAttraction {
	return h.list(ctx, "space_id = ?", spaceID)
}
