package hook

import (
	"nomad_admin/model"
	"nomad_admin/storage"

	"gorm.io/gorm"
)

type Event struct {
	*crud[model.Event]
}

func NewEvent(db *gorm.DB, store storage.Store) *Event {
	return &Event{crud: newCrud[model.Event](db, store, storage.BucketEvents, "start_date asc")}
}
