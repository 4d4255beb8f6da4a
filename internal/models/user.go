package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null" json:"username"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"userType"`

	// Relations
	Jobs         []Job         `gorm:"foreignKey:EmployerID" json:"-"`
	Resumes      []Resume      `gorm:"foreignKey:UserID" json:"-"`
	Applications []Application `gorm:"foreignKey:UserID" json:"-"`
}
