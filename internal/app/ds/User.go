package ds

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password string `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	Name     string `gorm:"type:varchar(100)" json:"name"`
	IsAdmin  bool   `gorm:"type:boolean;default:false" json:"is_admin"`
}
