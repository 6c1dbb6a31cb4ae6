package ds

import "time"

type Patient struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	IDName              string    `gorm:"column:id_name;type:varchar(250);unique;not null" json:"id_name"`
	FirstName           string    `gorm:"type:varchar(250);not null" json:"first_name"`
	MiddleNameOrInitial string    `gorm:"type:varchar(250)" json:"middle_name_or_initial,omitempty"`
	LastName            string    `gorm:"type:varchar(250);not null" json:"last_name"`
	NameSuffix          string    `gorm:"type:varchar(250)" json:"name_suffix,omitempty"`
	DateOfBirth         time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	PrimaryUserID       uint      `gorm:"not null;index" json:"primary_user_id"`

	PrimaryUser User `gorm:"foreignKey:PrimaryUserID" json:"-"`
}
