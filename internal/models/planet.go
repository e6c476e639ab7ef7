package models

// Planet is a planet from the Star Wars catalog.
type Planet struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name" gorm:"type:varchar(250);not null"`
	Diameter       *int    `json:"diameter"`
	RotationPeriod *int    `json:"rotation_period"`
	Climate        *string `json:"climate" gorm:"type:varchar(250)"`
}

func (Planet) TableName() string {
	return "planet"
}
