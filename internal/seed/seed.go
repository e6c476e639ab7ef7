package seed

import (
	"fmt"

	"starwars/internal/models"
	"starwars/internal/repositories"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Result counts the rows a seeding run inserted.
type Result struct {
	Users      int
	Characters int
	Planets    int
	Favorites  int
	Skipped    bool
}

// Run inserts the fixture in a single transaction. It does nothing when the
// store already holds users, characters or planets.
func Run(db *gorm.DB, fixture *Fixture, log logrus.FieldLogger) (Result, error) {
	var result Result
	err := db.Transaction(func(tx *gorm.DB) error {
		populated, err := hasCatalogData(tx)
		if err != nil {
			return err
		}
		if populated {
			result.Skipped = true
			return nil
		}

		userRepo := repositories.NewGORMUserRepository(tx)
		characterRepo := repositories.NewGORMCharacterRepository(tx)
		planetRepo := repositories.NewGORMPlanetRepository(tx)
		favoriteRepo := repositories.NewGORMFavoriteRepository(tx)

		usersByEmail, err := insertUsers(userRepo, fixture.Users)
		if err != nil {
			return err
		}
		result.Users = len(usersByEmail)

		charactersByName := make(map[string]uint, len(fixture.Characters))
		for _, c := range fixture.Characters {
			character := models.Character{Name: c.Name, EyeColor: c.EyeColor, Height: c.Height, BirthYear: c.BirthYear}
			if err := characterRepo.Create(&character); err != nil {
				return fmt.Errorf("failed to seed character %s: %w", c.Name, err)
			}
			charactersByName[c.Name] = character.ID
		}
		result.Characters = len(fixture.Characters)

		planetsByName := make(map[string]uint, len(fixture.Planets))
		for _, p := range fixture.Planets {
			planet := models.Planet{Name: p.Name, Diameter: p.Diameter, RotationPeriod: p.RotationPeriod, Climate: p.Climate}
			if err := planetRepo.Create(&planet); err != nil {
				return fmt.Errorf("failed to seed planet %s: %w", p.Name, err)
			}
			planetsByName[p.Name] = planet.ID
		}
		result.Planets = len(fixture.Planets)

		for _, f := range fixture.Favorites {
			favorite, err := resolveFavorite(f, usersByEmail, planetsByName, charactersByName)
			if err != nil {
				return err
			}
			if err := favoriteRepo.Create(favorite); err != nil {
				return fmt.Errorf("failed to seed favorite %s: %w", favorite.Name, err)
			}
		}
		result.Favorites = len(fixture.Favorites)
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	if result.Skipped {
		log.Info("Store already populated, skipping seed")
	} else {
		log.WithFields(logrus.Fields{
			"users":      result.Users,
			"characters": result.Characters,
			"planets":    result.Planets,
			"favorites":  result.Favorites,
		}).Info("Seeded store")
	}
	return result, nil
}

func hasCatalogData(tx *gorm.DB) (bool, error) {
	for _, model := range []interface{}{&models.User{}, &models.Character{}, &models.Planet{}} {
		var count int64
		if err := tx.Model(model).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to count existing rows: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func insertUsers(repo repositories.UserRepository, fixtures []UserFixture) (map[string]uint, error) {
	byEmail := make(map[string]uint, len(fixtures))
	for _, u := range fixtures {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}
		user := models.User{Email: u.Email, Password: string(hashed)}
		if u.Username != "" {
			username := u.Username
			user.Username = &username
		}
		if err := repo.Create(&user); err != nil {
			return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
		}
		byEmail[u.Email] = user.ID
	}
	return byEmail, nil
}

func resolveFavorite(f FavoriteFixture, users, planets, characters map[string]uint) (*models.Favorite, error) {
	userID, ok := users[f.UserEmail]
	if !ok {
		return nil, fmt.Errorf("favorite references unknown user %s", f.UserEmail)
	}
	favorite := &models.Favorite{UserID: userID}
	if f.Planet != "" {
		planetID, ok := planets[f.Planet]
		if !ok {
			return nil, fmt.Errorf("favorite references unknown planet %s", f.Planet)
		}
		favorite.Name = f.Planet
		favorite.PlanetID = &planetID
		return favorite, nil
	}
	characterID, ok := characters[f.Character]
	if !ok {
		return nil, fmt.Errorf("favorite references unknown character %s", f.Character)
	}
	favorite.Name = f.Character
	favorite.CharacterID = &characterID
	return favorite, nil
}
