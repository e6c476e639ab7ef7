package models

// Character is a person from the Star Wars catalog, exposed under /people.
type Character struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"type:varchar(250);not null"`
	EyeColor  *string `json:"eye_color" gorm:"type:varchar(250)"`
	Height    *int    `json:"height"`
	BirthYear *string `json:"birth_year" gorm:"type:varchar(250)"`
}

func (Character) TableName() string {
	return "character"
}
