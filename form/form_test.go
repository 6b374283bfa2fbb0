package form

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type articleInput struct {
	Title     string    `schema:"title" validate:"required,min=3"`
	Status    string    `schema:"status" validate:"required,oneof=draft published"`
	Tags      []string  `schema:"tags" validate:"min=1" message:"At least one tag is required"`
	Amenities []string  `schema:"amenities"`
	Featured  bool      `schema:"featured"`
	Capacity  int       `schema:"capacity" validate:"gte=0"`
	Price     *float64  `schema:"price" validate:"omitempty,gte=0"`
	Date      time.Time `schema:"date" validate:"required"`
	Body      string    `schema:"body"`
	Cover     File      `schema:"cover" validate:"-" file:"max=1024,types=image/png image/jpeg"`
}

var articleFields = []Field{
	{Name: "title", Label: "Title *", Kind: KindInput, Placeholder: "Enter title"},
	{Name: "status", Label: "Status *", Kind: KindDropdown, Options: []string{"draft", "published"}},
	{Name: "tags", Label: "Tags *", Kind: KindTagPicker, TagOptions: []string{"go", "rust", "zig"}},
	{Name: "amenities", Label: "Amenities", Kind: KindTagPicker, TagOptions: []string{"wifi", "hammock"}},
	{Name: "featured", Label: "Featured", Kind: KindCheckbox},
	{Name: "capacity", Label: "Capacity", Kind: KindInput, InputType: "number"},
	{Name: "price", Label: "Price", Kind: KindInput, InputType: "number"},
	{Name: "date", Label: "Date *", Kind: KindDate},
	{Name: "body", Label: "Body", Kind: KindRichText},
	{Name: "cover", Label: "Cover", Kind: KindFile, Bucket: "covers"},
}

func validArticle() Values {
	return Values{
		"title":    "Hello world",
		"status":   "draft",
		"tags":     TagSet{"go"},
		"featured": true,
		"capacity": "12",
		"price":    "",
		"date":     "2025-03-01",
	}
}

func postForm(values map[string][]string) *multipart.Form {
	return &multipart.Form{Value: values, File: map[string][]*multipart.FileHeader{}}
}

func uploadHeader(t *testing.T, field, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func pngBytes(t *testing.T, w, h, size int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	if size > buf.Len() {
		buf.Write(make([]byte, size-buf.Len()))
	}
	return buf.Bytes()
}

func TestTagSetAddTrimsAndRejectsDuplicates(t *testing.T) {
	var s TagSet
	assert.True(t, s.Add("  go "))
	assert.False(t, s.Add("go"))
	assert.False(t, s.Add("   "))
	assert.Equal(t, TagSet{"go"}, s)
}

func TestTagSetToggleOnlyTouchesOneEntry(t *testing.T) {
	s := NewTagSet("go", "rust")
	s.Toggle("go")
	assert.Equal(t, TagSet{"rust"}, s)
	s.Toggle("zig")
	assert.Equal(t, TagSet{"rust", "zig"}, s)
	assert.False(t, s.Remove("go"))
}

func TestTagSetToggleTwiceRestoresSelection(t *testing.T) {
	for _, tag := range []string{"go", "zig", "custom"} {
		s := NewTagSet("go", "custom", "rust")
		s.Toggle(tag)
		s.Toggle(tag)
		assert.ElementsMatch(t, TagSet{"go", "custom", "rust"}, s, tag)
	}

	s := NewTagSet("go")
	s.Add("go")
	s.Remove("zig")
	assert.Equal(t, TagSet{"go"}, s)
}

func TestSetDefaultsResetsOnlyForANewMap(t *testing.T) {
	defaults := Values{"title": "Original"}
	f := New[articleInput](articleFields, defaults)
	f.Values["title"] = "Edited"

	f.SetDefaults(defaults)
	assert.Equal(t, "Edited", f.Values["title"])

	f.Act("open:tags")
	f.state("tags").PendingTag = "zig"
	f.SetDefaults(defaults)
	assert.True(t, f.State["tags"].DialogOpen)

	f.SetDefaults(Values{"title": "Fresh"})
	assert.Equal(t, "Fresh", f.Values["title"])
	assert.Empty(t, f.State)
}

func TestRichTextIsSanitized(t *testing.T) {
	f := New[articleInput](articleFields, validArticle())
	f.Apply(postForm(map[string][]string{
		"body": {`<p style="text-align: center" onclick="steal()"><b>Hi</b></p><script>alert(1)</script>`},
	}))
	body := f.Values["body"].(string)
	assert.Contains(t, body, "<b>Hi</b>")
	assert.Contains(t, body, "text-align")
	assert.NotContains(t, body, "onclick")
	assert.NotContains(t, body, "<script>")

	c := Control{Value: `<img src="x" onerror="steal()">`}
	assert.NotContains(t, string(c.HTML()), "onerror")
}

func TestSubmitCoercesValues(t *testing.T) {
	f := New[articleInput](articleFields, validArticle())
	out, ok := f.Submit()
	require.True(t, ok, "errors: %v", f.Errors)

	assert.Equal(t, "Hello world", out.Title)
	assert.Equal(t, 12, out.Capacity)
	assert.Nil(t, out.Price)
	assert.True(t, out.Featured)
	assert.Equal(t, []string{"go"}, out.Tags)
	assert.NotNil(t, out.Amenities)
	assert.Empty(t, out.Amenities)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), out.Date)
	assert.True(t, out.Cover.IsZero())
}

func TestSubmitReportsOneMessagePerField(t *testing.T) {
	f := New[articleInput](articleFields, Values{
		"title":    "",
		"status":   "archived",
		"tags":     TagSet{},
		"capacity": "abc",
		"price":    "-1",
	})
	out, ok := f.Submit()
	require.False(t, ok)
	assert.Nil(t, out)

	assert.Equal(t, "Title is required", f.Errors["title"])
	assert.Equal(t, "Status must be one of: draft, published", f.Errors["status"])
	assert.Equal(t, "At least one tag is required", f.Errors["tags"])
	assert.Equal(t, "Capacity must be a whole number", f.Errors["capacity"])
	assert.Equal(t, "Price must be greater than or equal to 0", f.Errors["price"])
	assert.Equal(t, "Date is required", f.Errors["date"])
	assert.NotContains(t, f.Errors, "featured")
}

func TestHandleSkipsCallbackOnInvalidInput(t *testing.T) {
	f := New[articleInput](articleFields, Values{})
	called := false
	err := f.Handle(func(*articleInput) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalid)
	assert.False(t, called)
}

func TestFileSizeBoundary(t *testing.T) {
	rule, err := ParseFileRule("max=1024,types=image/png")
	require.NoError(t, err)

	exact := Pending(uploadHeader(t, "cover", "a.png", pngBytes(t, 1, 1, 1024)))
	assert.Empty(t, rule.Check(exact))

	over := Pending(uploadHeader(t, "cover", "b.png", pngBytes(t, 1, 1, 1025)))
	assert.Equal(t, "File size must be less than 1 KB", rule.Check(over))
}

func TestFileRuleChecksTypeThenDimensions(t *testing.T) {
	rule, err := ParseFileRule("required,max=5242880,types=image/jpeg image/png image/webp,dims=200x200-4096x4096")
	require.NoError(t, err)
	assert.Equal(t, int64(5242880), rule.MaxBytes)

	text := Pending(uploadHeader(t, "image", "notes.png", []byte("just some text")))
	assert.Equal(t, "Please upload a file in jpeg, png or webp format", rule.Check(text))

	tiny := Pending(uploadHeader(t, "image", "tiny.png", pngBytes(t, 10, 10, 0)))
	assert.Contains(t, rule.Check(tiny), "between 200x200 and 4096x4096")

	fine := Pending(uploadHeader(t, "image", "ok.png", pngBytes(t, 300, 200, 0)))
	assert.Empty(t, rule.Check(fine))

	assert.Equal(t, "Please select a file", rule.Check(File{}))
	assert.Empty(t, rule.Check(Stored("covers/a.png")))
}

func TestSubmitRejectsOversizedUpload(t *testing.T) {
	values := validArticle()
	values["cover"] = Pending(uploadHeader(t, "cover", "big.png", pngBytes(t, 1, 1, 2048)))
	f := New[articleInput](articleFields, values)
	_, ok := f.Submit()
	require.False(t, ok)
	assert.Equal(t, "File size must be less than 1 KB", f.Errors["cover"])
}

func TestApplyPerformsTagActions(t *testing.T) {
	f := New[articleInput](articleFields, validArticle())

	acted := f.Apply(postForm(map[string][]string{
		"title":   {"  Changed  "},
		"tags":    {"", "go"},
		"_action": {"toggle:tags:rust"},
	}))
	require.True(t, acted)
	assert.Equal(t, "Changed", f.Values["title"])
	assert.Equal(t, TagSet{"go", "rust"}, f.Values["tags"])
	assert.True(t, f.State["tags"].DialogOpen)

	f.Apply(postForm(map[string][]string{
		"tags":         {"", "go", "rust"},
		"_newtag.tags": {" zig "},
		"_action":      {"add:tags"},
	}))
	assert.Equal(t, TagSet{"go", "rust", "zig"}, f.Values["tags"])
	assert.Empty(t, f.State["tags"].PendingTag)

	f.Apply(postForm(map[string][]string{
		"tags":         {"", "go", "rust", "zig"},
		"_newtag.tags": {"go"},
		"_action":      {"add:tags"},
	}))
	assert.Equal(t, TagSet{"go", "rust", "zig"}, f.Values["tags"])
	assert.Equal(t, "go", f.State["tags"].PendingTag)

	f.Apply(postForm(map[string][]string{
		"tags":    {"", "go", "rust", "zig"},
		"_action": {"remove:tags:rust"},
	}))
	assert.Equal(t, TagSet{"go", "zig"}, f.Values["tags"])
}

func TestApplyWithoutActionSubmitsCheckboxAndEmptyTags(t *testing.T) {
	f := New[articleInput](articleFields, validArticle())
	acted := f.Apply(postForm(map[string][]string{
		"featured": {"false"},
		"tags":     {""},
	}))
	assert.False(t, acted)
	assert.Equal(t, false, f.Values["featured"])
	assert.Equal(t, TagSet{}, f.Values["tags"])

	_, ok := f.Submit()
	assert.False(t, ok)
	assert.Equal(t, "At least one tag is required", f.Errors["tags"])
}

func TestRenderShowsValuesErrorsAndAmenities(t *testing.T) {
	values := validArticle()
	values["title"] = ""
	values["amenities"] = TagSet{"wifi", "hammock"}
	values["cover"] = Stored("covers/a.png")
	f := New[articleInput](articleFields, values)
	f.Resolve = func(bucket, path string) string { return "https://cdn.test/" + path }
	f.Submit()

	html, err := f.Render(RenderOptions{Action: "/blog/new", SubmitText: "Create"})
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, `action="/blog/new"`)
	assert.Contains(t, out, `placeholder="Enter title"`)
	assert.Contains(t, out, "Title is required")
	assert.Contains(t, out, `<option value="draft" selected>`)
	assert.Contains(t, out, `name="featured" value="false"`)
	assert.Contains(t, out, "High-speed WiFi")
	assert.Contains(t, out, "hammock")
	assert.Contains(t, out, `src="https://cdn.test/covers/a.png"`)
	assert.Contains(t, out, `name="cover_remove"`)
	assert.Contains(t, out, `contenteditable="true"`)
	assert.Contains(t, out, "Create</button>")
}

func TestSchemaCheckFindsMissingKeys(t *testing.T) {
	s := SchemaOf[articleInput]()
	assert.NoError(t, s.Check(articleFields))
	assert.Error(t, s.Check([]Field{{Name: "nope", Kind: KindInput}}))
}

func TestStringsEncodesOptionalValues(t *testing.T) {
	var missing *float64
	price := 9.5
	assert.Nil(t, Strings(missing))
	assert.Equal(t, []string{"9.5"}, Strings(&price))
	assert.Equal(t, []string{"2024-01-02"}, Strings(time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)))
	assert.Nil(t, Strings(time.Time{}))
	assert.Equal(t, []string{"3"}, Strings(3))

	var noEnd *time.Time
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, Strings(noEnd))
	assert.Equal(t, "", Text(noEnd))
	assert.Equal(t, []string{"2026-03-02"}, Strings(&end))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "5 MB", FormatBytes(5*1024*1024))
	assert.Equal(t, "50 MB", FormatBytes(50*1024*1024))
	assert.Equal(t, "512 B", FormatBytes(512))
}
