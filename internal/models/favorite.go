package models

// Favorite links a user to a planet or a character they saved.
// Favorites created through the API set exactly one of PlanetID and CharacterID;
// the schema itself allows both or neither.
type Favorite struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"type:varchar(250);not null"`
	UserID      uint   `json:"user_id" gorm:"not null;index"`
	PlanetID    *uint  `json:"planet_id" gorm:"index"`
	CharacterID *uint  `json:"character_id" gorm:"index"`

	User      *User      `json:"-" gorm:"foreignKey:UserID"`
	Planet    *Planet    `json:"-" gorm:"foreignKey:PlanetID"`
	Character *Character `json:"-" gorm:"foreignKey:CharacterID"`
}

func (Favorite) TableName() string {
	return "favorite"
}
