package database

import (
	"fmt"
	"strconv"

	"nomad_admin/config"
	"nomad_admin/model"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table the admin owns.
var Models = []any{
	&model.Space{},
	&model.SpaceOffer{},
	&model.SpaceAttraction{},
	&model.SpaceImage{},
	&model.Event{},
	&model.BlogPost{},
	&model.Feedback{},
}

// Open connects with DB_DRIVER (postgres or sqlite) and migrates.
func Open() (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver := config.String("DB_DRIVER", "postgres"); driver {
	case "postgres":
		port, err := strconv.ParseUint(config.String("DB_PORT", "5432"), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to parse database port: %w", err)
		}
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"),
			config.Config("DB_NAME"), config.String("DB_SSLMODE", "disable"))
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(config.String("DB_PATH", "nomad_admin.db"))
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func logLevel() logger.LogLevel {
	if config.Bool("DB_DEBUG", false) {
		return logger.Info
	}
	return logger.Warn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// OpenMemory returns a migrated in-memory sqlite database on a single
// connection so every query sees the same data.
func OpenMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, Migrate(db)
}

func ConnectDB() {
	db, err := Open()
	if err != nil {
		log.Fatal(err)
	}
	DB = db
	log.Info("Connection Opened to Database")

	if config.Bool("SEED_DEMO", false) {
		SeedData(DB)
	}
}
