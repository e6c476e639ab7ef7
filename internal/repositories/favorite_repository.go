package repositories

import "starwars/internal/models"

// FavoriteRepository defines the interface for favorite data access.
type FavoriteRepository interface {
	GetByUserID(userID uint) ([]models.Favorite, error)
	GetByID(id uint) (*models.Favorite, error)
	Create(favorite *models.Favorite) error
	Delete(id uint) error
	DeleteByUserAndPlanet(userID, planetID uint) ([]models.Favorite, error)
	DeleteByUserAndCharacter(userID, characterID uint) ([]models.Favorite, error)
}
