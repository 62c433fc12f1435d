package models

import "time"

type User struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username      string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email         string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password      string    `gorm:"column:password_hash;size:255;not null" json:"-"` // Not show in JSON
	RealName      string    `gorm:"size:100" json:"real_name,omitempty"`
	StudentID     string    `gorm:"size:50" json:"student_id,omitempty"`
	AdmissionYear int       `json:"admission_year,omitempty"`
	IsAdmin       bool      `gorm:"default:false;not null" json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
