package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"nomad_admin/database"
	"nomad_admin/helper"
	"nomad_admin/hook"
	"nomad_admin/model"
	"nomad_admin/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	database.DB = db
	storage.Default = storage.NewMemory("/storage")
	helper.Revocations = nil
	t.Setenv("JWT_SECRET", "router-test-secret")
	return New()
}

func session(t *testing.T) string {
	t.Helper()
	token, err := helper.GenerateAccessToken(model.TokenClaim{Email: "admin@nomad.test"})
	require.NoError(t, err)
	return "access_token=" + token
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func get(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func body(t *testing.T, res *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(b)
}

func spaceValues(name string) url.Values {
	return url.Values{
		"name":              {name},
		"space_type":        {model.SpaceTypeCoworking},
		"short_description": {"Quiet desks"},
		"location":          {"Ubud, Bali"},
		"status":            {model.StatusDraft},
		"capacity":          {"40"},
		"allow_booking":     {"false", "true"},
	}
}

func TestPagesRequireASession(t *testing.T) {
	app := setup(t)

	res := get(t, app, "/spaces", "")
	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/login", res.Header.Get(fiber.HeaderLocation))

	req := httptest.NewRequest(fiber.MethodPost, "/spaces/x/images/reorder", strings.NewReader(`{"ids":["a"]}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestLogin(t *testing.T) {
	app := setup(t)
	hash, err := helper.HashPassword("s3cret!")
	require.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "admin@nomad.test")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)

	res := postForm(t, app, "/login", url.Values{"email": {"admin@nomad.test"}, "password": {"wrong"}}, "")
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, body(t, res), "Invalid email or password")

	res = postForm(t, app, "/login", url.Values{"email": {"not-an-email"}}, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body(t, res), "Password is required")

	res = postForm(t, app, "/login", url.Values{"email": {"admin@nomad.test"}, "password": {"s3cret!"}}, "")
	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get(fiber.HeaderLocation))
	assert.Contains(t, res.Header.Get(fiber.HeaderSetCookie), "access_token=")
}

func TestDashboardCounts(t *testing.T) {
	app := setup(t)
	database.SeedData(database.DB)

	res := get(t, app, "/", session(t))
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	html := body(t, res)
	assert.Contains(t, html, "<td>Spaces</td><td>2</td>")
	assert.Contains(t, html, "<td>Feedback</td><td>1</td>")
}

func TestCreateSpace(t *testing.T) {
	app := setup(t)
	cookie := session(t)

	res := postForm(t, app, "/spaces", spaceValues("Nomad Hub Ubud"), cookie)
	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/spaces", res.Header.Get(fiber.HeaderLocation))

	var space model.Space
	require.NoError(t, database.DB.First(&space, "name = ?", "Nomad Hub Ubud").Error)
	assert.Equal(t, 40, space.Capacity)
	assert.True(t, space.AllowBooking)
	assert.Empty(t, space.Amenities)
	assert.Nil(t, space.Image)

	res = get(t, app, "/spaces", cookie)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body(t, res), "Nomad Hub Ubud")
}

func TestInvalidSpaceIsRerendered(t *testing.T) {
	app := setup(t)
	values := spaceValues("")
	values.Set("capacity", "lots")

	res := postForm(t, app, "/spaces/new", values, session(t))
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	html := body(t, res)
	assert.Contains(t, html, "Capacity must be a whole number")

	var n int64
	database.DB.Model(&model.Space{}).Count(&n)
	assert.Zero(t, n)
}

func TestTagActionRerendersWithoutSaving(t *testing.T) {
	app := setup(t)
	values := spaceValues("Draft")
	values.Set("_action", "toggle:amenities:wifi")

	res := postForm(t, app, "/spaces/new", values, session(t))
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	html := body(t, res)
	assert.Contains(t, html, `name="amenities" value="wifi"`)
	assert.Contains(t, html, `value="Draft"`)

	var n int64
	database.DB.Model(&model.Space{}).Count(&n)
	assert.Zero(t, n)
}

func TestEditSpaceKeepsChildren(t *testing.T) {
	app := setup(t)
	cookie := session(t)
	ctx := context.Background()
	space := hook.NewSpace(database.DB, storage.Default).Create(ctx, &model.Space{
		Name: "Old", SpaceType: model.SpaceTypeCoworking, Location: "Ubud", Status: model.StatusDraft,
		Amenities: model.Tags{"wifi"}, Options: model.Tags{}, Tags: model.Tags{},
	})
	require.NotNil(t, space)
	offer := hook.NewOffer(database.DB).Create(ctx, &model.SpaceOffer{SpaceID: space.ID, Name: "Hot desk", Currency: "USD"})
	require.NotNil(t, offer)

	values := spaceValues("New")
	values["amenities"] = []string{"", "wifi", "pool"}
	res := postForm(t, app, "/spaces/"+space.ID, values, cookie)
	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)

	var got model.Space
	require.NoError(t, database.DB.First(&got, "id = ?", space.ID).Error)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, model.Tags{"wifi", "pool"}, got.Amenities)

	res = get(t, app, "/spaces/"+space.ID+"/offers", cookie)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body(t, res), "Hot desk")
}

func TestUnknownRowsAreNotFound(t *testing.T) {
	app := setup(t)
	cookie := session(t)

	res := get(t, app, "/spaces/0b7f2c3e-1111-4a1a-9d9d-000000000000", cookie)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Contains(t, body(t, res), "Space not found")

	res = get(t, app, "/events/not-a-uuid", cookie)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestOfferOfAnotherSpaceIsNotFound(t *testing.T) {
	app := setup(t)
	ctx := context.Background()
	spaces := hook.NewSpace(database.DB, storage.Default)
	a := spaces.Create(ctx, &model.Space{Name: "A", SpaceType: model.SpaceTypeCoworking, Location: "x", Status: model.StatusDraft})
	b := spaces.Create(ctx, &model.Space{Name: "B", SpaceType: model.SpaceTypeCoworking, Location: "x", Status: model.StatusDraft})
	require.NotNil(t, a)
	require.NotNil(t, b)
	offer := hook.NewOffer(database.DB).Create(ctx, &model.SpaceOffer{SpaceID: a.ID, Name: "Desk", Currency: "USD"})
	require.NotNil(t, offer)

	res := get(t, app, "/spaces/"+b.ID+"/offers/"+offer.ID, session(t))
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}

func TestReorderEndpoint(t *testing.T) {
	app := setup(t)
	ctx := context.Background()
	space := hook.NewSpace(database.DB, storage.Default).Create(ctx, &model.Space{
		Name: "Gallery", SpaceType: model.SpaceTypeCoworking, Location: "x", Status: model.StatusDraft,
	})
	require.NotNil(t, space)
	var ids []string
	for i := 1; i <= 3; i++ {
		img := model.SpaceImage{SpaceID: space.ID, Path: "p" + string(rune('0'+i)) + ".png", Position: i}
		require.NoError(t, database.DB.Create(&img).Error)
		ids = append(ids, img.ID)
	}

	reorder := func(ids []string) *http.Response {
		payload, err := json.Marshal(model.ReorderInput{IDs: ids})
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodPost, "/spaces/"+space.ID+"/images/reorder", bytes.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
		req.Header.Set("Cookie", session(t))
		res, err := app.Test(req, -1)
		require.NoError(t, err)
		return res
	}

	res := reorder([]string{ids[2], ids[0], ids[1]})
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var ok struct {
		Status string             `json:"status"`
		Data   []model.SpaceImage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&ok))
	assert.Equal(t, "success", ok.Status)
	require.Len(t, ok.Data, 3)
	assert.Equal(t, ids[2], ok.Data[0].ID)
	assert.Equal(t, 1, ok.Data[0].Position)

	res = reorder([]string{ids[0]})
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	var failed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&failed))
	assert.Equal(t, "Failed to reorder images", failed.Message)
	assert.Contains(t, failed.Error, "exactly once")

	res = reorder(nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
}

func TestDeleteFeedback(t *testing.T) {
	app := setup(t)
	cookie := session(t)
	row := model.Feedback{Name: "Ana", Country: "PT", Message: "Lovely"}
	require.NoError(t, database.DB.Create(&row).Error)

	res := get(t, app, "/feedback/"+row.ID+"/delete", cookie)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body(t, res), "feedback from Ana")

	res = postForm(t, app, "/feedback/"+row.ID+"/delete", url.Values{}, cookie)
	assert.Equal(t, fiber.StatusSeeOther, res.StatusCode)

	var n int64
	database.DB.Model(&model.Feedback{}).Count(&n)
	assert.Zero(t, n)
}

func TestEventPages(t *testing.T) {
	app := setup(t)
	cookie := session(t)

	res := get(t, app, "/events/new", cookie)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body(t, res), `name="end_date"`)

	values := url.Values{
		"title":       {"Meetup"},
		"description": {"Monthly nomad meetup"},
		"start_date":  {"2025-01-10"},
		"location":    {"Bali"},
		"status":      {model.StatusDraft},
	}
	res = postForm(t, app, "/events", values, cookie)
	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/events", res.Header.Get(fiber.HeaderLocation))

	var ev model.Event
	require.NoError(t, database.DB.First(&ev, "title = ?", "Meetup").Error)
	assert.Nil(t, ev.Image)
	assert.Nil(t, ev.EndDate)
	assert.Equal(t, "Bali", ev.Location)

	res = get(t, app, "/events/"+ev.ID, cookie)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	html := body(t, res)
	assert.Contains(t, html, `value="Meetup"`)
	assert.Contains(t, html, `value="2025-01-10"`)

	values.Set("end_date", "2025-01-09")
	res = postForm(t, app, "/events/"+ev.ID, values, cookie)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body(t, res), "End date must be on or after the start date")

	values.Set("end_date", "2025-01-11")
	values.Set("status", model.StatusPublished)
	res = postForm(t, app, "/events/"+ev.ID, values, cookie)
	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)

	require.NoError(t, database.DB.First(&ev, "id = ?", ev.ID).Error)
	assert.Equal(t, model.StatusPublished, ev.Status)
	require.NotNil(t, ev.EndDate)
	assert.Equal(t, "2025-01-11", ev.EndDate.Format("2006-01-02"))

	res = get(t, app, "/events", cookie)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Contains(t, body(t, res), "Meetup")
}

func TestImageAltIsValidated(t *testing.T) {
	app := setup(t)
	cookie := session(t)
	space := hook.NewSpace(database.DB, storage.Default).Create(context.Background(), &model.Space{
		Name: "Gallery", SpaceType: model.SpaceTypeCoworking, Location: "x", Status: model.StatusDraft,
	})
	require.NotNil(t, space)
	img := model.SpaceImage{SpaceID: space.ID, Path: "p1.png", Position: 1}
	require.NoError(t, database.DB.Create(&img).Error)
	path := "/spaces/" + space.ID + "/images/" + img.ID

	res := get(t, app, path, cookie)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	res = postForm(t, app, path, url.Values{"alt": {strings.Repeat("é", 201)}}, cookie)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	assert.Contains(t, body(t, res), "Alt Text must be at most 200 characters")

	res = postForm(t, app, path, url.Values{"alt": {strings.Repeat("é", 200)}}, cookie)
	require.Equal(t, fiber.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/spaces/"+space.ID+"/images", res.Header.Get(fiber.HeaderLocation))

	require.NoError(t, database.DB.First(&img, "id = ?", img.ID).Error)
	assert.Equal(t, strings.Repeat("é", 200), img.Alt)
}
