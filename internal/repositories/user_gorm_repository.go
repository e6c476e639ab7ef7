package repositories

import (
	"errors"
	"fmt"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// withFavorites loads each user's favorites in insertion order.
func (r *GORMUserRepository) withFavorites() *gorm.DB {
	return r.db.Preload("Favorites", func(db *gorm.DB) *gorm.DB {
		return db.Order("favorite.id")
	})
}

// GetAll retrieves all users, ordered by id, with their favorites.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	users := []models.User{}
	if err := r.withFavorites().Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	for i := range users {
		ensureFavorites(&users[i])
	}
	return users, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.withFavorites().First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	ensureFavorites(&user)
	return &user, nil
}

// First retrieves the user with the lowest ID.
func (r *GORMUserRepository) First() (*models.User, error) {
	var user models.User
	if err := r.withFavorites().Order("id").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("first user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get first user: %w", err)
	}
	ensureFavorites(&user)
	return &user, nil
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ensureFavorites makes users without favorites serialize an empty list, not null.
func ensureFavorites(user *models.User) {
	if user.Favorites == nil {
		user.Favorites = []models.Favorite{}
	}
}
