package db

import (
	"fmt"
	"log"

	"github.com/pelayanandata/portal-go/config"
	"github.com/pelayanandata/portal-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums() {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('pemohon', 'petugas_ppid', 'admin'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE request_type AS ENUM ('INFORMASI', 'NOL_RUPIAH'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE request_status AS ENUM ('SUBMITTED', 'BILLING_ISSUED', 'PAYMENT_UPLOADED', 'PAYMENT_CONFIRMED', 'DATA_UPLOADED', 'COMPLETED', 'REJECTED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE content_kind AS ENUM ('news', 'article', 'video'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE content_status AS ENUM ('DRAFT', 'PENDING_REVIEW', 'PUBLISHED', 'ARCHIVED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := DB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	createEnums()

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB swaps in an externally constructed connection (tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates the schema and seeds the SKM question catalog.
func Migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&models.User{},
		&models.DataRequest{},
		&models.DataRequestItem{},
		&models.SkmQuestion{},
		&models.SkmResponse{},
		&models.Content{},
		&models.AuditLog{},
	); err != nil {
		return err
	}
	return SeedSkmQuestions(gormDB)
}
