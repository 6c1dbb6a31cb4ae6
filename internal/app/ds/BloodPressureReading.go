package ds

import "time"

type BloodPressureReading struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TimeOfReading time.Time `gorm:"not null" json:"time_of_reading"`
	SystolicMmhg  int       `gorm:"not null" json:"systolic_mmhg"`
	DiastolicMmhg int       `gorm:"not null" json:"diastolic_mmhg"`
	PulseBpm      int       `gorm:"not null" json:"pulse_bpm"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

func (BloodPressureReading) TableName() string {
	return "bp_readings"
}
