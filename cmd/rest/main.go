package main

import (
	"context"
	"log"

	"notes-be/internal/bootstrap"
	"notes-be/internal/config"
	"notes-be/internal/server"
	"notes-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (memory driver needs no connection)
	var gormDB *gorm.DB
	if cfg.Database.Driver == "postgres" {
		var err error
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Reconciler Service...")
		if err := container.ReconcilerService.Consume(context.Background()); err != nil {
			log.Printf("Background Reconciler Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
