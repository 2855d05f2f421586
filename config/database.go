package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akwaflow/website/models"
)

var db *gorm.DB

// InitDatabase opens the single-file SQLite database configured in
// AppConfig.DatabasePath and configures the shared connection pool.
func InitDatabase() *gorm.DB {
	if db != nil {
		return db
	}

	cfg := Get()

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}

	gLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             2 * time.Second,
			LogLevel:                  toGormLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	var err error
	db, err = gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{Logger: gLogger})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// SQLite serializes writers anyway; keep the pool small and recycle idle
	// connections so the file lock is released promptly.
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("database ping failed: %v", err)
	}

	return db
}

// toGormLogLevel maps application LogLevel to GORM's logger level.
func toGormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		// GORM 'Info' shows SQL; use with caution
		return logger.Info
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	default:
		return logger.Warn
	}
}

// DB provides access to the initialized gorm DB instance.
func DB() *gorm.DB {
	if db == nil {
		log.Fatal("database not initialized, call InitDatabase first")
	}
	return db
}

// EnsureSchema creates the three tables if absent, seeds the admin row
// (insert-if-absent by username), and seeds sample posts only when the posts
// table is empty. It is idempotent and safe to call on every startup.
func EnsureSchema(db *gorm.DB, cfg AppConfig) error {
	if err := db.AutoMigrate(&models.Post{}, &models.Contact{}, &models.AdminUser{}); err != nil {
		return err
	}
	if err := seedAdminUser(db, cfg); err != nil {
		return err
	}
	return seedSamplePosts(db)
}

func seedAdminUser(db *gorm.DB, cfg AppConfig) error {
	var existing models.AdminUser
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := cfg.AdminPassword
	if password == "" {
		// No secret ships in source: generate a one-time bootstrap password
		// and surface it in the startup log.
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		password = hex.EncodeToString(buf)
		log.Printf("ADMIN_PASSWORD not set; bootstrap password for %q: %s", cfg.AdminUsername, password)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.AdminUser{Username: cfg.AdminUsername, Password: string(hash)}).Error
}

func seedSamplePosts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, post := range samplePosts() {
		if err := db.Create(&post).Error; err != nil {
			return err
		}
	}
	return nil
}
