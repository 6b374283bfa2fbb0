package helper

import (
	"context"
	"testing"
	"time"

	"nomad_admin/database"
	"nomad_admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "admin@nomad.test")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)

	claim, err := Authenticate(" Admin@Nomad.test ", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, "admin@nomad.test", claim.Email)

	_, err = Authenticate("admin@nomad.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Authenticate("someone@else.test", "s3cret!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAccessToken(model.TokenClaim{Email: "admin@nomad.test"})
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@nomad.test", claims["email"])
	assert.NotEmpty(t, claims["jti"])

	t.Setenv("JWT_SECRET", "rotated")
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}

func TestRevocationIsOptional(t *testing.T) {
	Revocations = nil
	revoked, err := IsRevoked(context.Background(), map[string]any{"jti": "abc"})
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.NoError(t, RevokeToken(context.Background(), map[string]any{"jti": "abc"}))
}

func TestUniqueSlug(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)

	assert.Equal(t, "hello-bali", UniqueSlug(db, &model.BlogPost{}, "Hello, Bali!", ""))
	require.NoError(t, db.Create(&model.BlogPost{Name: "x", Slug: "hello-bali", Status: model.StatusDraft, Tags: model.Tags{}}).Error)
	assert.Equal(t, "hello-bali-1", UniqueSlug(db, &model.BlogPost{}, "Hello Bali", ""))
	assert.Equal(t, "post", UniqueSlug(db, &model.BlogPost{}, "!!!", ""))
}

func TestArchivePastEvents(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)

	now := time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC) }
	endedOn := day(9)
	runsOn := day(12)
	events := []model.Event{
		{Title: "ended", StartDate: day(1), EndDate: &endedOn, Status: model.StatusPublished},
		{Title: "single day past", StartDate: day(9), Status: model.StatusPublished},
		{Title: "today", StartDate: day(10), Status: model.StatusPublished},
		{Title: "running", StartDate: day(8), EndDate: &runsOn, Status: model.StatusPublished},
		{Title: "draft past", StartDate: day(1), Status: model.StatusDraft},
	}
	for i := range events {
		events[i].Location = "Lisbon"
		events[i].Tags = model.Tags{}
	}
	require.NoError(t, db.Create(&events).Error)

	n, err := ArchivePastEvents(db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var archived []string
	require.NoError(t, db.Model(&model.Event{}).Where("status = ?", model.StatusArchived).Order("title").Pluck("title", &archived).Error)
	assert.Equal(t, []string{"ended", "single day past"}, archived)
}

func TestEventArchiveSchedulerIsOptIn(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)

	t.Setenv("EVENT_ARCHIVE_ENABLED", "")
	s, err := StartEventArchiveScheduler(db)
	require.NoError(t, err)
	assert.Nil(t, s)

	t.Setenv("EVENT_ARCHIVE_ENABLED", "true")
	t.Setenv("SCHEDULER_TZ", "UTC")
	s, err = StartEventArchiveScheduler(db)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Len(t, s.Jobs(), 1)
	require.NoError(t, s.Shutdown())
}
