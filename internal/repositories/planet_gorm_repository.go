package repositories

import (
	"errors"
	"fmt"

	"starwars/internal/models"

	"gorm.io/gorm"
)

// GORMPlanetRepository is a GORM implementation of PlanetRepository.
type GORMPlanetRepository struct {
	db *gorm.DB
}

// NewGORMPlanetRepository creates a new instance of GORMPlanetRepository.
func NewGORMPlanetRepository(db *gorm.DB) *GORMPlanetRepository {
	return &GORMPlanetRepository{
		db: db,
	}
}

// GetAll retrieves all planets ordered by id.
func (r *GORMPlanetRepository) GetAll() ([]models.Planet, error) {
	planets := []models.Planet{}
	if err := r.db.Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to get all planets: %w", err)
	}
	return planets, nil
}

// GetByID retrieves a single planet by its ID.
func (r *GORMPlanetRepository) GetByID(id uint) (*models.Planet, error) {
	var planet models.Planet
	if err := r.db.First(&planet, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("planet with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get planet by ID %d: %w", id, err)
	}
	return &planet, nil
}

// Create creates a new planet in the database.
func (r *GORMPlanetRepository) Create(planet *models.Planet) error {
	if err := r.db.Create(planet).Error; err != nil {
		return fmt.Errorf("failed to create planet: %w", err)
	}
	return nil
}
