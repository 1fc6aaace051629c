package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProfileModel mirrors the 'profiles' table. UserID is both the primary key and the owner reference.
type ProfileModel struct {
	UserID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	User           *UserModel     `gorm:"foreignKey:UserID"`
	Company        string         `gorm:"type:varchar(255)"`
	Website        string         `gorm:"type:varchar(255)"`
	Location       string         `gorm:"type:varchar(255)"`
	Status         string         `gorm:"type:varchar(255);not null"`
	Skills         pq.StringArray `gorm:"type:text[];not null"`
	Bio            string         `gorm:"type:text"`
	GitHubUsername string         `gorm:"column:github_username;type:varchar(100)"`
	YouTube        string         `gorm:"column:youtube;type:varchar(255)"`
	Twitter        string         `gorm:"type:varchar(255)"`
	Facebook       string         `gorm:"type:varchar(255)"`
	LinkedIn       string         `gorm:"column:linkedin;type:varchar(255)"`
	Instagram      string         `gorm:"type:varchar(255)"`
	CreatedAt      time.Time

	Experiences []ExperienceModel `gorm:"foreignKey:ProfileUserID;references:UserID"`
	Educations  []EducationModel  `gorm:"foreignKey:ProfileUserID;references:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ExperienceModel mirrors the 'profile_experiences' table.
type ExperienceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Company       string    `gorm:"type:varchar(255);not null"`
	Location      string    `gorm:"type:varchar(255)"`
	FromDate      time.Time `gorm:"not null"`
	ToDate        *time.Time
	Current       bool
	Description   string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ExperienceModel) TableName() string {
	return "profile_experiences"
}

// EducationModel mirrors the 'profile_educations' table.
type EducationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	School        string    `gorm:"type:varchar(255);not null"`
	Degree        string    `gorm:"type:varchar(255);not null"`
	FieldOfStudy  string    `gorm:"type:varchar(255);not null"`
	FromDate      time.Time `gorm:"not null"`
	ToDate        *time.Time
	Current       bool
	Description   string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (EducationModel) TableName() string {
	return "profile_educations"
}
