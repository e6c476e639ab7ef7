package repositories

import "starwars/internal/models"

// CharacterRepository defines the interface for character data access.
type CharacterRepository interface {
	GetAll() ([]models.Character, error)
	GetByID(id uint) (*models.Character, error)
	Create(character *models.Character) error
}
