package helper

import (
	"time"

	"nomad_admin/config"
	"nomad_admin/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// ArchivePastEvents archives published events that ended before the day of
// now. Events without an end date end on their start date.
func ArchivePastEvents(db *gorm.DB, now time.Time) (int64, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	res := db.Model(&model.Event{}).
		Where("status = ?", model.StatusPublished).
		Where("(end_date IS NOT NULL AND end_date < ?) OR (end_date IS NULL AND start_date < ?)", today, today).
		Update("status", model.StatusArchived)
	return res.RowsAffected, res.Error
}

// StartEventArchiveScheduler runs ArchivePastEvents daily at 00:05 in
// SCHEDULER_TZ. The job is opt-in: it returns nil unless
// EVENT_ARCHIVE_ENABLED is true.
func StartEventArchiveScheduler(db *gorm.DB) (gocron.Scheduler, error) {
	if !config.Bool("EVENT_ARCHIVE_ENABLED", false) {
		log.Info("event archive scheduler disabled")
		return nil, nil
	}
	loc, err := time.LoadLocation(config.String("SCHEDULER_TZ", "UTC"))
	if err != nil {
		return nil, err
	}
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			n, err := ArchivePastEvents(db, time.Now().In(loc))
			if err != nil {
				log.Errorf("archive past events: %v", err)
				return
			}
			log.Infof("archived %d past events", n)
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	log.Infof("event archive scheduler started (00:05 %s)", loc)
	return s, nil
}
