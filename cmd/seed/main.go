// Command seed populates a development database with demo accounts and
// entry histories.
package main

import (
	"flag"
	"log"
	"strings"

	"wellspring/internal/config"
	"wellspring/internal/database"
	"wellspring/internal/seed"
)

func main() {
	var (
		numUsers       = flag.Int("users", 10, "number of demo users to create")
		entriesPerKind = flag.Int("entries", 30, "entries of each kind per user")
		maxDays        = flag.Int("days", 90, "spread entries over this many days back")
		clean          = flag.Bool("clean", false, "delete existing data first")
		randomSeed     = flag.Int64("seed", 0, "random seed (0 means time-based)")
		preset         = flag.String("preset", "", "path to a YAML seeding preset; overrides the flags above")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if strings.EqualFold(cfg.Env, "production") || strings.EqualFold(cfg.Env, "prod") {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:       *numUsers,
		EntriesPerKind: *entriesPerKind,
		MaxDays:        *maxDays,
		ShouldClean:    *clean,
		RandomSeed:     *randomSeed,
	}
	if *preset != "" {
		p, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		opts = p.Options()
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
