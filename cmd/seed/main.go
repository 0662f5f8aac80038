package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chitresh99/cybersecurity-club-apsit/config"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/model"
	"github.com/chitresh99/cybersecurity-club-apsit/internal/repository"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/database"
	"github.com/chitresh99/cybersecurity-club-apsit/pkg/hash"
	applogger "github.com/chitresh99/cybersecurity-club-apsit/pkg/logger"
)

// Seeds the admin account from ADMIN_USERNAME / ADMIN_PASSWORD and a few
// sample events. Safe to run repeatedly; existing rows are left alone.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("access sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	ctx := context.Background()
	repo := repository.NewRepository(db)

	if err := seedAdmin(ctx, cfg, repo, logger); err != nil {
		logger.Fatal("seed admin failed", zap.Error(err))
	}
	if err := seedEvents(ctx, repo, logger); err != nil {
		logger.Fatal("seed events failed", zap.Error(err))
	}

	logger.Info("seed complete")
}

func seedAdmin(ctx context.Context, cfg *config.Config, repo *repository.Repository, logger *zap.Logger) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return errors.New("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}
	if len(password) < 8 {
		return errors.New("ADMIN_PASSWORD must be at least 8 characters")
	}

	_, err := repo.User.GetByUsername(ctx, username)
	if err == nil {
		logger.Info("admin already exists, skipping", zap.String("username", username))
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hasher := hash.NewHasher(&cfg.Hash)
	encoded, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: encoded,
		IsActive:     true,
	}
	if err := repo.User.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("admin created", zap.String("username", username))
	return nil
}

func seedEvents(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	existing, err := repo.Event.List(ctx, nil)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("events already present, skipping", zap.Int("count", len(existing)))
		return nil
	}

	base := time.Now().UTC()
	samples := []model.Event{
		{
			Title:       "Intro to Web Exploitation",
			Type:        model.EventTypeWorkshop,
			Date:        base.AddDate(0, 0, 14),
			Description: "<p>Hands-on workshop covering the OWASP Top 10.</p>",
			IsActive:    true,
		},
		{
			Title:       "Capture The Flag 2026",
			Type:        model.EventTypeHackathon,
			Date:        base.AddDate(0, 1, 0),
			Description: "<p>24-hour jeopardy-style CTF. Teams of four.</p>",
			IsActive:    true,
		},
		{
			Title:       "Career Paths in Security",
			Type:        model.EventTypeSeminar,
			Date:        base.AddDate(0, 0, 30),
			Description: "<p>Guest talk by industry practitioners.</p>",
			IsActive:    true,
		},
	}

	for i := range samples {
		if err := repo.Event.Create(ctx, &samples[i]); err != nil {
			return err
		}
	}

	logger.Info("sample events created", zap.Int("count", len(samples)))
	return nil
}
