package handlers

import (
	"errors"

	"starwars/internal/apierror"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves users, people and planets.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users", h.HandleListUsers)
	router.Get("/people", h.HandleListPeople)
	router.Get("/people/:id<int>", h.HandleGetPerson)
	router.Get("/planet", h.HandleListPlanets)
	router.Get("/planet/:id<int>", h.HandleGetPlanet)
}

// HandleListUsers returns every user with their favorites.
func (h *CatalogHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// HandleListPeople returns every character.
func (h *CatalogHandler) HandleListPeople(c *fiber.Ctx) error {
	people, err := h.service.ListCharacters()
	if err != nil {
		return err
	}
	return c.JSON(people)
}

// HandleGetPerson returns a single character.
func (h *CatalogHandler) HandleGetPerson(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return apierror.NotFound("person not found")
	}
	person, err := h.service.GetCharacter(id)
	if err != nil {
		if errors.Is(err, services.ErrCharacterNotFound) {
			return apierror.NotFound("person not found")
		}
		return err
	}
	return c.JSON(person)
}

// HandleListPlanets returns every planet.
func (h *CatalogHandler) HandleListPlanets(c *fiber.Ctx) error {
	planets, err := h.service.ListPlanets()
	if err != nil {
		return err
	}
	return c.JSON(planets)
}

// HandleGetPlanet returns a single planet.
func (h *CatalogHandler) HandleGetPlanet(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return apierror.NotFound("planet not found")
	}
	planet, err := h.service.GetPlanet(id)
	if err != nil {
		if errors.Is(err, services.ErrPlanetNotFound) {
			return apierror.NotFound("planet not found")
		}
		return err
	}
	return c.JSON(planet)
}
