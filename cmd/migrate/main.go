package main

import (
	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/dsn"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	connStr, err := dsn.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	err = db.AutoMigrate(
		&ds.User{},
		&ds.Patient{},
		&ds.BloodPressureReading{},
	)
	if err != nil {
		log.Fatal("cant migrate db")
	}

	log.Info("migration complete")
}
