package repositories

import "starwars/internal/models"

// PlanetRepository defines the interface for planet data access.
type PlanetRepository interface {
	GetAll() ([]models.Planet, error)
	GetByID(id uint) (*models.Planet, error)
	Create(planet *models.Planet) error
}
