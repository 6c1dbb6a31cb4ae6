package repository

import (
	"github.com/edwestfieldjr/BP-Tracker/internal/app/ds"

	"gorm.io/gorm"
)

func (r *Repository) CreateReading(reading *ds.BloodPressureReading) error {
	return r.db.Create(reading).Error
}

func (r *Repository) GetReadingByID(id uint) (*ds.BloodPressureReading, error) {
	var reading ds.BloodPressureReading
	if err := r.db.First(&reading, id).Error; err != nil {
		return nil, err
	}
	return &reading, nil
}

func (r *Repository) UpdateReading(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&ds.BloodPressureReading{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DeleteReading(id uint) error {
	result := r.db.Delete(&ds.BloodPressureReading{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) ListReadingsByPatient(patientID uint) ([]ds.BloodPressureReading, error) {
	var readings []ds.BloodPressureReading
	err := r.db.Where("patient_id = ?", patientID).Order("time_of_reading ASC").Find(&readings).Error
	return readings, err
}
