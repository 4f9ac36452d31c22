package sqlite

import (
	"fmt"
	"log"
	"os"

	"github.com/Rohith-Keenthananickal/Heaven-connect-communication/internal/domain/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB initializes the GORM database connection using SQLite and runs
// schema migration for the registered entities.
func NewDB() *gorm.DB {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		dbURL = "communication.db"
		log.Println("⚠️ WARN: DB_URL environment variable not set, defaulting to 'communication.db'")
	}

	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dbURL), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		log.Fatalf("🔴 ERROR: Failed to connect to database: %v", err)
	}
	log.Printf("Successfully connected to database: %s", dbURL)

	if err := AutoMigrate(db); err != nil {
		log.Fatalf("🔴 ERROR: Failed to auto-migrate database schema: %v", err)
	}
	log.Println("Database schema migration completed.")

	return db
}

// AutoMigrate automatically migrates the database schema for the defined entities.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Player{}); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}

// CloseDB closes the underlying database connection.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}
	return sqlDB.Close()
}
