// Package bootstrap establishes runtime dependencies shared by the
// application binaries.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"wellspring/internal/cache"
	"wellspring/internal/config"
	"wellspring/internal/database"
	"wellspring/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoAccount bool
}

// InitRuntime connects to DB and Redis and optionally ensures the
// development demo account exists.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// May leave a nil client if Redis is unreachable; the app degrades
	// gracefully without it.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoAccount {
		if err := ensureDemoAccount(cfg, db); err != nil {
			return nil, nil, fmt.Errorf("failed to bootstrap demo account: %w", err)
		}
	}

	return db, r, nil
}

// ensureDemoAccount creates a well-known login for local development.
// It never runs outside the development environment.
func ensureDemoAccount(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") {
		return nil
	}

	password := cfg.DevDemoPassword
	if password == "" {
		return fmt.Errorf("DEV_DEMO_PASSWORD must be set when DEV_SEED_DEMO is enabled")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var demo models.User
	findErr := db.Where("username = ?", "demo").First(&demo).Error
	switch {
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		demo = models.User{
			Username: "demo",
			Email:    "demo@wellspring.local",
			Password: string(hashedPassword),
		}
		if err := db.Create(&demo).Error; err != nil {
			return err
		}
		log.Printf("development demo account created (%s)", demo.Email)
	case findErr != nil:
		return findErr
	}

	return nil
}
