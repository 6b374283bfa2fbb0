package main

import (
	"context"

	"nomad_admin/config"
	"nomad_admin/database"
	"nomad_admin/helper"
	"nomad_admin/router"
	"nomad_admin/storage"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	database.ConnectDB()

	store, err := storage.New()
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	storage.Default = store

	if client := helper.InitRedis(context.Background()); client != nil {
		defer client.Close()
	}

	scheduler, err := helper.StartEventArchiveScheduler(database.DB)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	if scheduler != nil {
		defer func() { _ = scheduler.Shutdown() }()
	}

	app := router.New()
	if disk, ok := store.(*storage.Disk); ok {
		app.Static(config.String("STORAGE_URL", "/storage"), disk.Root)
	}

	if err := app.Listen(":" + config.String("PORT", "8002")); err != nil {
		log.Fatal(err)
	}
}
