package model

import (
	"time"

	"gorm.io/datatypes"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Volunteer struct {
	ID                uint                        `gorm:"primaryKey" json:"id"`
	UserID            uint                        `gorm:"uniqueIndex;not null" json:"user_id"`
	User              *User                       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FullName          string                      `gorm:"type:varchar(100);not null" json:"full_name"`
	NationalID        string                      `gorm:"type:varchar(20);uniqueIndex;not null" json:"national_id"`
	DateOfBirth       *datatypes.Date             `json:"date_of_birth"`
	Gender            Gender                      `gorm:"type:varchar(10)" json:"gender"`
	Address           string                      `gorm:"type:varchar(200)" json:"address"`
	Phone             string                      `gorm:"type:varchar(20)" json:"phone"`
	PrimaryProfession string                      `gorm:"type:varchar(100)" json:"primary_profession"`
	Education         string                      `gorm:"type:text" json:"education"`
	Experience        string                      `gorm:"type:text" json:"experience"`
	Courses           datatypes.JSONSlice[string] `json:"courses"`
	Languages         datatypes.JSONSlice[string] `json:"languages"`
	Interests         datatypes.JSONSlice[string] `json:"interests"`
	AreaOfInterest    string                      `gorm:"type:varchar(100)" json:"area_of_interest"`
	ContactReference  string                      `gorm:"type:varchar(100)" json:"contact_reference"`
	Summary           string                      `gorm:"type:text" json:"summary"`
	JoinDate          time.Time                   `json:"join_date"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
}

// Age is computed against now and is birthday aware. A missing date of birth
// yields false.
func (v *Volunteer) Age(now time.Time) (int, bool) {
	if v.DateOfBirth == nil {
		return 0, false
	}
	return YearsBetween(time.Time(*v.DateOfBirth), now), true
}

// YearsBetween counts full years from birth to now.
func YearsBetween(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

type Commander struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Department string    `gorm:"type:varchar(100)" json:"department"`
	Rank       string    `gorm:"type:varchar(50)" json:"rank"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type HR struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User       *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Department string    `gorm:"type:varchar(100)" json:"department"`
	Phone      string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (HR) TableName() string {
	return "hr_profiles"
}
