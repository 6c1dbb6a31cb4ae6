package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/policy"
	"github.com/edwestfieldjr/BP-Tracker/internal/app/repository"

	"gorm.io/gorm"
)

// PatientService creates and fetches patients under the supervising user.
type PatientService struct {
	repo *repository.Repository
}

func NewPatientService(repo *repository.Repository) *PatientService {
	return &PatientService{repo: repo}
}

// PatientFields is the input for creating a patient.
type PatientFields struct {
	FirstName           string
	MiddleNameOrInitial string
	LastName            string
	NameSuffix          string
	DateOfBirth         time.Time
}

// Create stores a new patient supervised by the actor. The id_name slug
// is derived from the lower-cased first and last name; a numeric suffix
// disambiguates collisions.
func (s *PatientService) Create(actor policy.Actor, fields PatientFields) (*ds.Patient, error) {
	if actor.IsAnonymous() {
		return nil, ErrAuthRequired
	}

	first := strings.TrimSpace(fields.FirstName)
	last := strings.TrimSpace(fields.LastName)
	if first == "" || last == "" {
		return nil, fmt.Errorf("%w: first_name and last_name are required", ErrValidation)
	}
	if fields.DateOfBirth.IsZero() {
		return nil, fmt.Errorf("%w: date_of_birth is required", ErrValidation)
	}

	idName, err := s.deriveIDName(first, last)
	if err != nil {
		return nil, err
	}

	patient := &ds.Patient{
		IDName:              idName,
		FirstName:           first,
		MiddleNameOrInitial: strings.TrimSpace(fields.MiddleNameOrInitial),
		LastName:            last,
		NameSuffix:          strings.TrimSpace(fields.NameSuffix),
		DateOfBirth:         fields.DateOfBirth,
		PrimaryUserID:       actor.ID,
	}
	if err := s.repo.CreatePatient(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// deriveIDName builds lower(first)_lower(last) and appends _2, _3, ...
// until the slug is free.
func (s *PatientService) deriveIDName(first, last string) (string, error) {
	base := strings.ToLower(first) + "_" + strings.ToLower(last)
	idName := base
	for n := 2; ; n++ {
		taken, err := s.repo.IDNameExists(idName)
		if err != nil {
			return "", err
		}
		if !taken {
			return idName, nil
		}
		idName = fmt.Sprintf("%s_%d", base, n)
	}
}

// Get fetches a patient visible to the actor. A patient that exists but
// belongs to someone else is reported as forbidden, not as missing.
func (s *PatientService) Get(actor policy.Actor, patientID uint) (*ds.Patient, error) {
	if actor.IsAnonymous() {
		return nil, ErrAuthRequired
	}
	patient, err := s.repo.GetPatientByID(patientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanViewPatient(actor, patient) {
		return nil, ErrForbidden
	}
	return patient, nil
}

// GetForEdit applies the write-side rule before reading mutations.
func (s *PatientService) GetForEdit(actor policy.Actor, patientID uint) (*ds.Patient, error) {
	patient, err := s.Get(actor, patientID)
	if err != nil {
		return nil, err
	}
	if !policy.CanEditPatient(actor, patient) {
		return nil, ErrForbidden
	}
	return patient, nil
}

// ListForUser returns the patients supervised by targetUserID, gated by
// the self-or-admin rule.
func (s *PatientService) ListForUser(actor policy.Actor, targetUserID uint) ([]ds.Patient, error) {
	if actor.IsAnonymous() {
		return nil, ErrAuthRequired
	}
	if !policy.CanViewUser(actor, targetUserID) {
		return nil, ErrForbidden
	}
	return s.repo.ListPatientsByUser(targetUserID)
}

// ListVisible returns every patient for admins, else the actor's own.
func (s *PatientService) ListVisible(actor policy.Actor) ([]ds.Patient, error) {
	if actor.IsAnonymous() {
		return nil, ErrAuthRequired
	}
	if actor.IsAdmin {
		return s.repo.ListAllPatients()
	}
	return s.repo.ListPatientsByUser(actor.ID)
}
