package services

import (
	"errors"

	"starwars/internal/models"
	"starwars/internal/repositories"
)

// CatalogService serves the read-only part of the blog: users, characters and planets.
type CatalogService struct {
	userRepo      repositories.UserRepository
	characterRepo repositories.CharacterRepository
	planetRepo    repositories.PlanetRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(userRepo repositories.UserRepository, characterRepo repositories.CharacterRepository, planetRepo repositories.PlanetRepository) *CatalogService {
	return &CatalogService{
		userRepo:      userRepo,
		characterRepo: characterRepo,
		planetRepo:    planetRepo,
	}
}

// ListUsers retrieves all users with their favorites.
func (s *CatalogService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// ListCharacters retrieves all characters.
func (s *CatalogService) ListCharacters() ([]models.Character, error) {
	return s.characterRepo.GetAll()
}

// GetCharacter retrieves a single character, or ErrCharacterNotFound.
func (s *CatalogService) GetCharacter(id uint) (*models.Character, error) {
	character, err := s.characterRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrCharacterNotFound
	}
	return character, err
}

// ListPlanets retrieves all planets.
func (s *CatalogService) ListPlanets() ([]models.Planet, error) {
	return s.planetRepo.GetAll()
}

// GetPlanet retrieves a single planet, or ErrPlanetNotFound.
func (s *CatalogService) GetPlanet(id uint) (*models.Planet, error) {
	planet, err := s.planetRepo.GetByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrPlanetNotFound
	}
	return planet, err
}
