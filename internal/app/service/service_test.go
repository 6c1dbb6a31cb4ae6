package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/policy"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&ds.User{}, &ds.Patient{}, &ds.BloodPressureReading{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return repository.New(db)
}

func mustRegister(t *testing.T, accounts *AccountService, email, password, name string) *ds.User {
	t.Helper()
	user, err := accounts.Register(email, password, password, name)
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user
}

func actorFor(user *ds.User) policy.Actor {
	return policy.Actor{ID: user.ID, IsAdmin: user.IsAdmin}
}

func dob(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
