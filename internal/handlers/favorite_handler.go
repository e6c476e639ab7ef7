package handlers

import (
	"errors"

	"starwars/internal/apierror"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for user favorites.
type FavoriteHandler struct {
	service *services.FavoriteService

	// legacyErrorEnvelope answers a missing favorite on DELETE /favorite/:id
	// with {"error": ...} instead of {"message": ...}.
	legacyErrorEnvelope bool
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service *services.FavoriteService, legacyErrorEnvelope bool) *FavoriteHandler {
	return &FavoriteHandler{
		service:             service,
		legacyErrorEnvelope: legacyErrorEnvelope,
	}
}

// RegisterRoutes registers the favorite routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users/favorites", h.HandleListUserFavorites)

	favorites := router.Group("/favorite")
	favorites.Post("/planet/:id<int>", h.HandleAddFavoritePlanet)
	favorites.Post("/people/:id<int>", h.HandleAddFavoritePerson)
	favorites.Delete("/planet/:id<int>", h.HandleDeleteFavoritePlanet)
	favorites.Delete("/people/:id<int>", h.HandleDeleteFavoritePerson)
	favorites.Delete("/:id<int>", h.HandleDeleteFavorite)
}

// HandleListUserFavorites lists the favorites of the user given by ?user_id=.
func (h *FavoriteHandler) HandleListUserFavorites(c *fiber.Ctx) error {
	favorites, err := h.service.ListUserFavorites(queryUserID(c))
	if err != nil {
		return favoriteError(err)
	}
	return c.JSON(favorites)
}

// HandleAddFavoritePlanet saves planet :id as a favorite of ?user_id=.
func (h *FavoriteHandler) HandleAddFavoritePlanet(c *fiber.Ctx) error {
	userID := queryUserID(c)
	if userID == nil {
		return apierror.NotFound("User not found")
	}
	planetID, ok := pathID(c)
	if !ok {
		return apierror.NotFound("Planet not found")
	}
	if _, err := h.service.AddFavoritePlanet(*userID, planetID); err != nil {
		return favoriteError(err)
	}
	return c.JSON(fiber.Map{"message": "Favorite planet added successfully"})
}

// HandleAddFavoritePerson saves character :id as a favorite of ?user_id=.
func (h *FavoriteHandler) HandleAddFavoritePerson(c *fiber.Ctx) error {
	userID := queryUserID(c)
	if userID == nil {
		return apierror.NotFound("User not found")
	}
	characterID, ok := pathID(c)
	if !ok {
		return apierror.NotFound("person not found")
	}
	if _, err := h.service.AddFavoriteCharacter(*userID, characterID); err != nil {
		return favoriteError(err)
	}
	return c.JSON(fiber.Map{"message": "Favorite character added successfully"})
}

// HandleDeleteFavorite removes favorite :id.
func (h *FavoriteHandler) HandleDeleteFavorite(c *fiber.Ctx) error {
	id, ok := pathID(c)
	var err error
	if !ok {
		err = services.ErrFavoriteNotFound
	} else {
		err = h.service.DeleteFavorite(id)
	}
	if err != nil {
		if errors.Is(err, services.ErrFavoriteNotFound) && h.legacyErrorEnvelope {
			return apierror.NotFound("Favorite not found").WithKey(apierror.ErrorKey)
		}
		return favoriteError(err)
	}
	return c.JSON(fiber.Map{"message": "Favorite deleted successfully"})
}

// HandleDeleteFavoritePlanet removes the favorites of ?user_id= for planet :id.
func (h *FavoriteHandler) HandleDeleteFavoritePlanet(c *fiber.Ctx) error {
	userID := queryUserID(c)
	if userID == nil {
		return apierror.NotFound("User not found")
	}
	planetID, ok := pathID(c)
	if !ok {
		return apierror.NotFound("Favorite not found")
	}
	if err := h.service.DeleteFavoritePlanet(*userID, planetID); err != nil {
		return favoriteError(err)
	}
	return c.JSON(fiber.Map{"message": "Favorite planet deleted successfully"})
}

// HandleDeleteFavoritePerson removes the favorites of ?user_id= for character :id.
func (h *FavoriteHandler) HandleDeleteFavoritePerson(c *fiber.Ctx) error {
	userID := queryUserID(c)
	if userID == nil {
		return apierror.NotFound("User not found")
	}
	characterID, ok := pathID(c)
	if !ok {
		return apierror.NotFound("Favorite not found")
	}
	if err := h.service.DeleteFavoriteCharacter(*userID, characterID); err != nil {
		return favoriteError(err)
	}
	return c.JSON(fiber.Map{"message": "Favorite character deleted successfully"})
}

// favoriteError maps service errors to API errors; anything else passes through.
func favoriteError(err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return apierror.NotFound("User not found")
	case errors.Is(err, services.ErrPlanetNotFound):
		return apierror.NotFound("Planet not found")
	case errors.Is(err, services.ErrCharacterNotFound):
		return apierror.NotFound("person not found")
	case errors.Is(err, services.ErrFavoriteNotFound):
		return apierror.NotFound("Favorite not found")
	}
	return err
}
