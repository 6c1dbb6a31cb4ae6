package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/repository"

	"gorm.io/gorm"
)

// ReadingService is the CRUD layer for blood-pressure readings. Callers
// must have authorized against the owning patient before invoking any
// mutation here.
type ReadingService struct {
	repo *repository.Repository
}

func NewReadingService(repo *repository.Repository) *ReadingService {
	return &ReadingService{repo: repo}
}

// ReadingFields is the input for creating or replacing a reading.
type ReadingFields struct {
	TimeOfReading time.Time
	SystolicMmhg  int
	DiastolicMmhg int
	PulseBpm      int
}

func validateReadingFields(fields ReadingFields) error {
	if fields.TimeOfReading.IsZero() {
		return fmt.Errorf("%w: time_of_reading is required", ErrValidation)
	}
	if fields.SystolicMmhg <= 0 || fields.DiastolicMmhg <= 0 || fields.PulseBpm <= 0 {
		return fmt.Errorf("%w: systolic, diastolic and pulse must be positive", ErrValidation)
	}
	return nil
}

// Create stores a reading for an existing patient.
func (s *ReadingService) Create(patientID uint, fields ReadingFields) (*ds.BloodPressureReading, error) {
	if err := validateReadingFields(fields); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetPatientByID(patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reading := &ds.BloodPressureReading{
		TimeOfReading: fields.TimeOfReading,
		SystolicMmhg:  fields.SystolicMmhg,
		DiastolicMmhg: fields.DiastolicMmhg,
		PulseBpm:      fields.PulseBpm,
		PatientID:     patientID,
	}
	if err := s.repo.CreateReading(reading); err != nil {
		return nil, err
	}
	return reading, nil
}

// Get fetches a single reading.
func (s *ReadingService) Get(readingID uint) (*ds.BloodPressureReading, error) {
	reading, err := s.repo.GetReadingByID(readingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reading, nil
}

// Update replaces all four mutable fields of a reading.
func (s *ReadingService) Update(readingID uint, fields ReadingFields) (*ds.BloodPressureReading, error) {
	if err := validateReadingFields(fields); err != nil {
		return nil, err
	}
	err := s.repo.UpdateReading(readingID, map[string]interface{}{
		"time_of_reading": fields.TimeOfReading,
		"systolic_mmhg":   fields.SystolicMmhg,
		"diastolic_mmhg":  fields.DiastolicMmhg,
		"pulse_bpm":       fields.PulseBpm,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(readingID)
}

// Delete removes a reading permanently. Deleting an id that is already
// gone fails with ErrNotFound rather than succeeding silently.
func (s *ReadingService) Delete(readingID uint) error {
	err := s.repo.DeleteReading(readingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ListForPatient returns the patient's readings in ascending time order.
func (s *ReadingService) ListForPatient(patientID uint) ([]ds.BloodPressureReading, error) {
	if _, err := s.repo.GetPatientByID(patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.ListReadingsByPatient(patientID)
}
