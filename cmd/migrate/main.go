// Command migrate applies the database schema.
package main

import (
	"flag"
	"log"

	"wellspring/internal/config"
	"wellspring/internal/database"
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect runs AutoMigrate outside production; in production this
	// command is the explicit way to apply the schema.
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
