package models

// User is a blog reader who can save favorites.
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Username  *string    `json:"username" gorm:"uniqueIndex;type:varchar(120)"`
	Email     string     `json:"email" gorm:"uniqueIndex;type:varchar(120);not null"`
	Password  string     `json:"-" gorm:"type:varchar(80);not null"` // Never serialized
	Favorites []Favorite `json:"favorites" gorm:"foreignKey:UserID"`
}

// TableName keeps the singular table name used by the blog schema.
func (User) TableName() string {
	return "user"
}
