package main

import (
	"fmt"
	"os"
	"time"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/dsn"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
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

	adminEmail := os.Getenv("SEED_ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "changeme"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := ds.User{
		Email:    adminEmail,
		Password: string(hashed),
		Name:     "Administrator",
		IsAdmin:  true,
	}
	if err := db.Where("email = ?", adminEmail).FirstOrCreate(&admin).Error; err != nil {
		log.Fatal(err)
	}
	fmt.Printf("admin user: %s (id=%d)\n", admin.Email, admin.ID)

	patient := ds.Patient{
		IDName:        "jane_doe",
		FirstName:     "Jane",
		LastName:      "Doe",
		DateOfBirth:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		PrimaryUserID: admin.ID,
	}
	if err := db.Where("id_name = ?", patient.IDName).FirstOrCreate(&patient).Error; err != nil {
		log.Fatal(err)
	}
	fmt.Printf("demo patient: %s (id=%d)\n", patient.IDName, patient.ID)

	readings := []ds.BloodPressureReading{
		{TimeOfReading: time.Now().Add(-48 * time.Hour), SystolicMmhg: 118, DiastolicMmhg: 78, PulseBpm: 66, PatientID: patient.ID},
		{TimeOfReading: time.Now().Add(-24 * time.Hour), SystolicMmhg: 122, DiastolicMmhg: 81, PulseBpm: 70, PatientID: patient.ID},
		{TimeOfReading: time.Now(), SystolicMmhg: 120, DiastolicMmhg: 80, PulseBpm: 68, PatientID: patient.ID},
	}
	for _, reading := range readings {
		if err := db.Create(&reading).Error; err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("seeding complete")
}
