package repositories

import "starwars/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	First() (*models.User, error)
	Create(user *models.User) error
}
