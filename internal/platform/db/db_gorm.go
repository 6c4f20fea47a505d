// Package db opens the application's Postgres connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "petverse_backend/internal/feature/auth/domain/entity"
	careentity "petverse_backend/internal/feature/petcare/domain/entity"
	recordentity "petverse_backend/internal/feature/petrecords/domain/entity"
	petentity "petverse_backend/internal/feature/pets/domain/entity"
	postentity "petverse_backend/internal/feature/posts/domain/entity"
	userentity "petverse_backend/internal/feature/users/domain/entity"
)

// OpenDB connects to Postgres using DATABASE_URL, or the DB_* variables when
// DATABASE_URL is unset. It retries for up to 60 seconds so the server
// survives a database that is still starting, and exits the process when the
// deadline passes.
func OpenDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASSWORD")
		name := os.Getenv("DB_NAME")
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, pass, name)
	}

	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		conn, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := conn.AutoMigrate(
			&authentity.User{},
			&petentity.Pet{},
			&recordentity.HealthRecord{},
			&recordentity.Vaccine{},
			&recordentity.Medication{},
			&recordentity.WeightEntry{},
			&recordentity.MedicalVisit{},
			&postentity.Post{},
			&postentity.PostLike{},
			&postentity.PostComment{},
			&careentity.CardScan{},
			&careentity.Recommendation{},
			&userentity.UserSettings{},
			&userentity.UserAddress{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return conn
}
