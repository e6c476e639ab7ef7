package services

import (
	"errors"
	"fmt"
	"time"

	"starwars/internal/models"
	"starwars/internal/repositories"
	"starwars/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

// EventPublisher publishes favorite lifecycle events.
type EventPublisher interface {
	PublishFavoriteEvent(event rabbitmq.FavoriteEvent) error
}

// FavoriteService handles saving and removing user favorites.
type FavoriteService struct {
	favoriteRepo  repositories.FavoriteRepository
	userRepo      repositories.UserRepository
	planetRepo    repositories.PlanetRepository
	characterRepo repositories.CharacterRepository
	publisher     EventPublisher // optional
	log           logrus.FieldLogger

	// userFallback makes ListUserFavorites answer for the first user when
	// the requested one cannot be resolved.
	userFallback bool
}

// NewFavoriteService creates a new FavoriteService. publisher may be nil.
func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	userRepo repositories.UserRepository,
	planetRepo repositories.PlanetRepository,
	characterRepo repositories.CharacterRepository,
	publisher EventPublisher,
	log logrus.FieldLogger,
	userFallback bool,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo:  favoriteRepo,
		userRepo:      userRepo,
		planetRepo:    planetRepo,
		characterRepo: characterRepo,
		publisher:     publisher,
		log:           log,
		userFallback:  userFallback,
	}
}

// ListUserFavorites returns the favorites of the given user. A nil userID means
// the caller supplied no usable id.
func (s *FavoriteService) ListUserFavorites(userID *uint) ([]models.Favorite, error) {
	user, err := s.resolveUser(userID)
	if err != nil {
		return nil, err
	}
	return s.favoriteRepo.GetByUserID(user.ID)
}

func (s *FavoriteService) resolveUser(userID *uint) (*models.User, error) {
	if userID != nil {
		user, err := s.userRepo.GetByID(*userID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}
	if !s.userFallback {
		return nil, ErrUserNotFound
	}

	user, err := s.userRepo.First()
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	fields := logrus.Fields{"user_id": user.ID}
	if userID != nil {
		fields["requested_user_id"] = *userID
	}
	s.log.WithFields(fields).Debug("Falling back to first user for favorites listing")
	return user, nil
}

// AddFavoritePlanet saves a planet as a favorite of the user. The favorite takes
// the planet's name.
func (s *FavoriteService) AddFavoritePlanet(userID, planetID uint) (*models.Favorite, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	planet, err := s.planetRepo.GetByID(planetID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlanetNotFound
		}
		return nil, err
	}

	favorite := &models.Favorite{
		Name:     planet.Name,
		UserID:   userID,
		PlanetID: &planet.ID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, err
	}
	s.publish(rabbitmq.FavoriteAdded, *favorite)
	return favorite, nil
}

// AddFavoriteCharacter saves a character as a favorite of the user. The favorite
// takes the character's name.
func (s *FavoriteService) AddFavoriteCharacter(userID, characterID uint) (*models.Favorite, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}
	character, err := s.characterRepo.GetByID(characterID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}

	favorite := &models.Favorite{
		Name:        character.Name,
		UserID:      userID,
		CharacterID: &character.ID,
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		return nil, err
	}
	s.publish(rabbitmq.FavoriteAdded, *favorite)
	return favorite, nil
}

// DeleteFavorite removes a favorite by its id.
func (s *FavoriteService) DeleteFavorite(id uint) error {
	favorite, err := s.favoriteRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	if err := s.favoriteRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	s.publish(rabbitmq.FavoriteRemoved, *favorite)
	return nil
}

// DeleteFavoritePlanet removes the user's favorites pointing at the planet.
func (s *FavoriteService) DeleteFavoritePlanet(userID, planetID uint) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}
	removed, err := s.favoriteRepo.DeleteByUserAndPlanet(userID, planetID)
	return s.afterBulkDelete(removed, err)
}

// DeleteFavoriteCharacter removes the user's favorites pointing at the character.
func (s *FavoriteService) DeleteFavoriteCharacter(userID, characterID uint) error {
	if err := s.requireUser(userID); err != nil {
		return err
	}
	removed, err := s.favoriteRepo.DeleteByUserAndCharacter(userID, characterID)
	return s.afterBulkDelete(removed, err)
}

func (s *FavoriteService) afterBulkDelete(removed []models.Favorite, err error) error {
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	for _, favorite := range removed {
		s.publish(rabbitmq.FavoriteRemoved, favorite)
	}
	return nil
}

func (s *FavoriteService) requireUser(userID uint) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to check user %d: %w", userID, err)
	}
	return nil
}

// publish never fails the request; the mutation is already committed.
func (s *FavoriteService) publish(eventType string, favorite models.Favorite) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.FavoriteEvent{
		Type:        eventType,
		FavoriteID:  favorite.ID,
		UserID:      favorite.UserID,
		PlanetID:    favorite.PlanetID,
		CharacterID: favorite.CharacterID,
		Name:        favorite.Name,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishFavoriteEvent(event); err != nil {
		s.log.WithError(err).WithField("favorite_id", favorite.ID).
			Warnf("Failed to publish %s event", eventType)
	}
}
