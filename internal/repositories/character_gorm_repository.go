package repositories

import (
	"errors"
	"fmt"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// GORMCharacterRepository is a GORM implementation of CharacterRepository.
type GORMCharacterRepository struct {
	db *gorm.DB
}

// NewGORMCharacterRepository creates a new instance of GORMCharacterRepository.
func NewGORMCharacterRepository(db *gorm.DB) *GORMCharacterRepository {
	return &GORMCharacterRepository{
		db: db,
	}
}

// GetAll retrieves all characters ordered by id.
func (r *GORMCharacterRepository) GetAll() ([]models.Character, error) {
	characters := []models.Character{}
	if err := r.db.Order("id").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to get all characters: %w", err)
	}
	return characters, nil
}

// GetByID retrieves a single character by its ID.
func (r *GORMCharacterRepository) GetByID(id uint) (*models.Character, error) {
	var character models.Character
	if err := r.db.First(&character, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("character with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get character by ID %d: %w", id, err)
	}
	return &character, nil
}

// Create creates a new character in the database.
func (r *GORMCharacterRepository) Create(character *models.Character) error {
	if err := r.db.Create(character).Error; err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}
