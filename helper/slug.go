package helper

import (
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// UniqueSlug slugifies source and appends -1, -2, ... until no row of the
// model other than excludeID uses it.
func UniqueSlug(tx *gorm.DB, model any, source, excludeID string) string {
	base := slug.Make(source)
	if base == "" {
		base = "post"
	}
	result := base
	i := 1

	for {
		var count int64
		q := tx.Model(model).Where("slug = ?", result)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		q.Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
