package database

import (
	"fmt"
	"log"

	"github.com/scorecard-system/backend/internal/config"
	"github.com/scorecard-system/backend/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	var logLevel logger.LogLevel
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	} else {
		logLevel = logger.Silent
	}

	log.Printf("Attempting %s connection with DSN: %s", cfg.Database.Driver, maskPassword(cfg.Database.DSN))

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection successful")
	return db, nil
}

func maskPassword(dsn string) string {
	// Simple password masking for logging
	if len(dsn) > 20 {
		return dsn[:20] + "...***..."
	}
	return "***"
}

func Migrate(db *gorm.DB) error {
	log.Println("Running migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Class{},
		&models.Student{},
		&models.Program{},
		&models.Theme{},
		&models.PKVRecord{},
		&models.Semester{},
		&models.MarkLog{},
		&models.RefreshToken{},
	)
	if err != nil {
		return err
	}

	// Add performance indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_students_class ON students(class_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_mark_logs_user_year ON mark_logs(user_id, academic_year)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_pkv_records_student ON pkv_records(student_id)")

	return nil
}
