package repository

import (
	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"
)

func (r *Repository) CreatePatient(p *ds.Patient) error {
	return r.db.Create(p).Error
}

func (r *Repository) GetPatientByID(id uint) (*ds.Patient, error) {
	var p ds.Patient
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListPatientsByUser(userID uint) ([]ds.Patient, error) {
	var patients []ds.Patient
	err := r.db.Where("primary_user_id = ?", userID).Order("id").Find(&patients).Error
	return patients, err
}

func (r *Repository) ListAllPatients() ([]ds.Patient, error) {
	var patients []ds.Patient
	err := r.db.Order("id").Find(&patients).Error
	return patients, err
}

// IDNameExists reports whether a patient already carries the given slug.
func (r *Repository) IDNameExists(idName string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Patient{}).Where("id_name = ?", idName).Count(&count).Error
	return count > 0, err
}
