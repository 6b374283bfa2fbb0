package hook

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"nomad_admin/form"
	"nomad_admin/model"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGallery(t *testing.T, h *SpaceImage, spaceID string, n int) []model.SpaceImage {
	t.Helper()
	var imgs []model.SpaceImage
	for i := 0; i < n; i++ {
		img := h.Upload(context.Background(), spaceID, pngUpload(t, "g.png"), "")
		require.NotNil(t, img, h.Error())
		imgs = append(imgs, *img)
	}
	return imgs
}

func positions(imgs []model.SpaceImage) []int {
	return lo.Map(imgs, func(img model.SpaceImage, _ int) int { return img.Position })
}

func ids(imgs []model.SpaceImage) []string {
	return lo.Map(imgs, func(img model.SpaceImage, _ int) string { return img.ID })
}

func TestUploadAppendsToGallery(t *testing.T) {
	db, store := setup(t)
	h := NewSpaceImage(db, store)

	imgs := seedGallery(t, h, "space-a", 3)
	assert.Equal(t, []int{1, 2, 3}, positions(imgs))

	other := seedGallery(t, h, "space-b", 1)
	assert.Equal(t, 1, other[0].Position)
}

func TestUploadWithoutFileFails(t *testing.T) {
	db, store := setup(t)
	h := NewSpaceImage(db, store)
	assert.Nil(t, h.Upload(context.Background(), "space-a", form.File{}, "alt"))
	assert.NotEmpty(t, h.Error())
}

func TestReorderAppliesPermutation(t *testing.T) {
	db, store := setup(t)
	ctx := context.Background()
	h := NewSpaceImage(db, store)
	imgs := seedGallery(t, h, "space-a", 5)

	rng := rand.New(rand.NewPCG(7, 11))
	perms := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 0, 3, 1, 4},
		{1, 2, 3, 4, 0},
	}
	for i := 0; i < 6; i++ {
		perms = append(perms, rng.Perm(len(imgs)))
	}

	for _, perm := range perms {
		order := lo.Map(perm, func(p int, _ int) string { return imgs[p].ID })
		require.True(t, h.Reorder(ctx, "space-a", order), h.Error())
		assert.True(t, h.Success())

		listed := h.ListBySpace(ctx, "space-a")
		assert.Equal(t, order, ids(listed), perm)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, positions(listed), perm)
	}
}

func TestReorderRejectsIncompleteOrder(t *testing.T) {
	db, store := setup(t)
	ctx := context.Background()
	h := NewSpaceImage(db, store)
	imgs := seedGallery(t, h, "space-a", 3)

	assert.False(t, h.Reorder(ctx, "space-a", []string{imgs[1].ID, imgs[0].ID}))
	assert.Contains(t, h.Error(), "exactly once")
	assert.ErrorIs(t, h.Err(), ErrIncompleteOrder)
	assert.False(t, h.Reorder(ctx, "space-a", []string{imgs[0].ID, imgs[0].ID, imgs[1].ID}))

	assert.Equal(t, ids(imgs), ids(h.ListBySpace(ctx, "space-a")))
}

func TestReorderReportsPartialFailureWithoutRollback(t *testing.T) {
	db, store := setup(t)
	ctx := context.Background()
	h := NewSpaceImage(db, store)
	imgs := seedGallery(t, h, "space-a", 3)

	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:fail_second", func(tx *gorm.DB) {
		if m, ok := tx.Statement.Dest.(map[string]interface{}); ok && m["position"] == 2 {
			_ = tx.AddError(errors.New("write conflict"))
		}
	}))

	order := []string{imgs[2].ID, imgs[1].ID, imgs[0].ID}
	assert.False(t, h.Reorder(ctx, "space-a", order))
	assert.Contains(t, h.Error(), "failed to reorder 1 of 3 images")
	assert.Contains(t, h.Error(), "write conflict")

	var first, last model.SpaceImage
	require.NoError(t, db.First(&first, "id = ?", imgs[2].ID).Error)
	require.NoError(t, db.First(&last, "id = ?", imgs[0].ID).Error)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 3, last.Position)
}

func TestDeleteImageKeepsPositionsDense(t *testing.T) {
	db, store := setup(t)
	ctx := context.Background()
	h := NewSpaceImage(db, store)
	imgs := seedGallery(t, h, "space-a", 3)

	require.True(t, h.Delete(ctx, imgs[1].ID))
	listed := h.ListBySpace(ctx, "space-a")
	assert.Equal(t, []string{imgs[0].ID, imgs[2].ID}, ids(listed))
	assert.Equal(t, []int{1, 2}, positions(listed))
	assert.Contains(t, store.Removed(), "spaces/"+imgs[1].Path)
}

func TestUpdateAlt(t *testing.T) {
	db, store := setup(t)
	h := NewSpaceImage(db, store)
	imgs := seedGallery(t, h, "space-a", 1)

	img := h.UpdateAlt(context.Background(), imgs[0].ID, "Rooftop at sunset")
	require.NotNil(t, img)
	assert.Equal(t, "Rooftop at sunset", img.Alt)
	assert.Equal(t, 1, img.Position)
}
