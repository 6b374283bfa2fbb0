package hook

import (
	"context"
	"math"
	"regexp"
	"strings"
	"time"

	"nomad_admin/helper"
	"nomad_admin/model"
	"nomad_admin/storage"

	"gorm.io/gorm"
)

// WordsPerMinute is the reading speed behind the time-to-read estimate.
const WordsPerMinute = 200

var tags = regexp.MustCompile(`<[^>]*>`)

// ReadingTime estimates minutes to read rich-text content.
func ReadingTime(html string) int {
	words := len(strings.Fields(tags.ReplaceAllString(html, " ")))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

type Blog struct {
	*crud[model.BlogPost]
	now func() time.Time
}

func NewBlog(db *gorm.DB, store storage.Store) *Blog {
	return &Blog{
		crud: newCrud[model.BlogPost](db, store, storage.BucketBlogs, "created_at desc"),
		now:  time.Now,
	}
}

// Create fills in the slug, the reading time and the publication date when
// the post does not carry them.
func (h *Blog) Create(ctx context.Context, post *model.BlogPost) *model.BlogPost {
	source := post.Slug
	if source == "" {
		source = post.Name
	}
	post.Slug = helper.UniqueSlug(h.db.WithContext(ctx), &model.BlogPost{}, source, "")
	if post.TimeToRead == 0 {
		post.TimeToRead = ReadingTime(post.Content)
	}
	if post.Status == model.StatusPublished && post.PublishedAt == nil {
		now := h.now()
		post.PublishedAt = &now
	}
	return h.crud.Create(ctx, post)
}

// Update keeps the slug unique, re-estimates a zero reading time and stamps
// the first publication.
func (h *Blog) Update(ctx context.Context, id string, changes map[string]any) *model.BlogPost {
	current := h.Get(ctx, id)
	if current == nil {
		return nil
	}
	if s, ok := changes["slug"].(string); ok {
		if s == "" {
			s, _ = changes["name"].(string)
		}
		if s == "" {
			s = current.Name
		}
		changes["slug"] = helper.UniqueSlug(h.db.WithContext(ctx), &model.BlogPost{}, s, id)
	}
	if n, ok := changes["time_to_read"].(int); ok && n == 0 {
		content, ok := changes["content"].(string)
		if !ok {
			content = current.Content
		}
		changes["time_to_read"] = ReadingTime(content)
	}
	if changes["status"] == model.StatusPublished && current.PublishedAt == nil {
		changes["published_at"] = h.now()
	}
	return h.crud.Update(ctx, id, changes)
}
