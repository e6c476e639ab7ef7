package repositories

import (
	"errors"
	"fmt"

	"starwars/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetByUserID retrieves the favorites of one user in insertion order.
func (r *GORMFavoriteRepository) GetByUserID(userID uint) ([]models.Favorite, error) {
	favorites := []models.Favorite{}
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorites for user %d: %w", userID, err)
	}
	return favorites, nil
}

// GetByID retrieves a single favorite by its ID.
func (r *GORMFavoriteRepository) GetByID(id uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.First(&favorite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("favorite with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get favorite by ID %d: %w", id, err)
	}
	return &favorite, nil
}

// Create inserts a new favorite.
func (r *GORMFavoriteRepository) Create(favorite *models.Favorite) error {
	if err := r.db.Omit(clause.Associations).Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete deletes a favorite by its ID.
func (r *GORMFavoriteRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Favorite{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteByUserAndPlanet removes every favorite of the user pointing at the planet
// and returns the removed rows.
func (r *GORMFavoriteRepository) DeleteByUserAndPlanet(userID, planetID uint) ([]models.Favorite, error) {
	return r.deleteWhere("user_id = ? AND planet_id = ?", userID, planetID)
}

// DeleteByUserAndCharacter removes every favorite of the user pointing at the
// character and returns the removed rows.
func (r *GORMFavoriteRepository) DeleteByUserAndCharacter(userID, characterID uint) ([]models.Favorite, error) {
	return r.deleteWhere("user_id = ? AND character_id = ?", userID, characterID)
}

func (r *GORMFavoriteRepository) deleteWhere(query string, userID, targetID uint) ([]models.Favorite, error) {
	var removed []models.Favorite
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(query, userID, targetID).Order("id").Find(&removed).Error; err != nil {
			return err
		}
		if len(removed) == 0 {
			return ErrNotFound
		}
		return tx.Where(query, userID, targetID).Delete(&models.Favorite{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("favorite of user %d for target %d: %w", userID, targetID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete favorites: %w", err)
	}
	return removed, nil
}
