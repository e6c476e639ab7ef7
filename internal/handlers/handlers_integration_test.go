package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"starwars/internal/apierror"
	"starwars/internal/database"
	"starwars/internal/handlers"
	"starwars/internal/models"
	"starwars/internal/repositories"
	"starwars/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type appOptions struct {
	userFallback        bool
	legacyErrorEnvelope bool
}

// setupApp builds a Fiber app over a fresh SQLite file with all handlers registered.
func setupApp(t *testing.T, opts appOptions) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	log := logrus.New()
	log.Out = io.Discard

	userRepo := repositories.NewGORMUserRepository(db)
	characterRepo := repositories.NewGORMCharacterRepository(db)
	planetRepo := repositories.NewGORMPlanetRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	catalogService := services.NewCatalogService(userRepo, characterRepo, planetRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, userRepo, planetRepo, characterRepo, nil, log, opts.userFallback)

	app := fiber.New(fiber.Config{ErrorHandler: apierror.Handler(log)})
	app.Get("/", handlers.HandleSitemap)
	app.Get("/health", handlers.NewHealthHandler(db).HandleHealth)
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(app)
	handlers.NewFavoriteHandler(favoriteService, opts.legacyErrorEnvelope).RegisterRoutes(app)
	return app, db
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type seeded struct {
	luke, leia     models.User
	tatooine, hoth models.Planet
	yoda, vader    models.Character
}

func seedStore(t *testing.T, db *gorm.DB) seeded {
	t.Helper()
	s := seeded{
		luke:     models.User{Username: strPtr("luke"), Email: "luke@rebellion.org", Password: "hashed"},
		leia:     models.User{Username: strPtr("leia"), Email: "leia@alderaan.gov", Password: "hashed"},
		tatooine: models.Planet{Name: "Tatooine", Diameter: intPtr(10465), RotationPeriod: intPtr(23), Climate: strPtr("arid")},
		hoth:     models.Planet{Name: "Hoth", Climate: strPtr("frozen")},
		yoda:     models.Character{Name: "Yoda", EyeColor: strPtr("brown"), Height: intPtr(66), BirthYear: strPtr("896BBY")},
		vader:    models.Character{Name: "Darth Vader"},
	}
	require.NoError(t, db.Create(&s.luke).Error)
	require.NoError(t, db.Create(&s.leia).Error)
	require.NoError(t, db.Create(&s.tatooine).Error)
	require.NoError(t, db.Create(&s.hoth).Error)
	require.NoError(t, db.Create(&s.yoda).Error)
	require.NoError(t, db.Create(&s.vader).Error)
	return s
}

func doJSON(t *testing.T, app *fiber.App, method, target string, out interface{}) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestPeopleEndpoints(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)

	var people []map[string]interface{}
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/people", &people))
	assert.Len(t, people, 2)

	var person map[string]interface{}
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/people/"+itoa(s.yoda.ID), &person))
	assert.Equal(t, float64(s.yoda.ID), person["id"])
	assert.Equal(t, "Yoda", person["name"])
	assert.Equal(t, "brown", person["eye_color"])
	assert.Equal(t, float64(66), person["height"])
	assert.Equal(t, "896BBY", person["birth_year"])

	// Nullable columns serialize as null
	person = nil
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/people/"+itoa(s.vader.ID)+"/", &person))
	assert.Contains(t, person, "eye_color")
	assert.Nil(t, person["eye_color"])

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/people/999", &body))
	assert.Equal(t, map[string]string{"message": "person not found"}, body)
}

func TestPlanetEndpoints(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)

	var planets []models.Planet
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/planet/", &planets))
	require.Len(t, planets, 2)
	assert.Equal(t, "Tatooine", planets[0].Name)

	var planet map[string]interface{}
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/planet/"+itoa(s.tatooine.ID), &planet))
	assert.Equal(t, float64(10465), planet["diameter"])
	assert.Equal(t, float64(23), planet["rotation_period"])
	assert.Equal(t, "arid", planet["climate"])

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/planet/404", &body))
	assert.Equal(t, "planet not found", body["message"])
}

func TestListUsers_HidesPassword(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)
	require.NoError(t, db.Create(&models.Favorite{Name: "Hoth", UserID: s.luke.ID, PlanetID: &s.hoth.ID}).Error)

	var users []map[string]interface{}
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/users", &users))
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotContains(t, u, "password")
		assert.Contains(t, u, "favorites")
	}
	assert.Equal(t, "luke", users[0]["username"])
	favorites := users[0]["favorites"].([]interface{})
	require.Len(t, favorites, 1)
	assert.Equal(t, "Hoth", favorites[0].(map[string]interface{})["name"])
	assert.Equal(t, []interface{}{}, users[1]["favorites"])
}

func TestAddFavoritePlanetScenario(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)

	var body map[string]string
	status := doJSON(t, app, http.MethodPost, "/favorite/planet/"+itoa(s.tatooine.ID)+"?user_id="+itoa(s.luke.ID), &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]string{"message": "Favorite planet added successfully"}, body)

	var stored []models.Favorite
	require.NoError(t, db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.Equal(t, "Tatooine", stored[0].Name)
	assert.Equal(t, s.luke.ID, stored[0].UserID)
	assert.Equal(t, s.tatooine.ID, *stored[0].PlanetID)
	assert.Nil(t, stored[0].CharacterID)

	var favorites []map[string]interface{}
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/users/favorites?user_id="+itoa(s.luke.ID), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, float64(s.tatooine.ID), favorites[0]["planet_id"])
	assert.Equal(t, "Tatooine", favorites[0]["name"])
	assert.Nil(t, favorites[0]["character_id"])
}

func TestAddFavoritePlanet_NotFound(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPost, "/favorite/planet/"+itoa(s.hoth.ID)+"?user_id=999", &body))
	assert.Equal(t, "User not found", body["message"])

	body = nil
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPost, "/favorite/planet/"+itoa(s.hoth.ID), &body))
	assert.Equal(t, "User not found", body["message"])

	body = nil
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPost, "/favorite/planet/999?user_id="+itoa(s.luke.ID), &body))
	assert.Equal(t, "Planet not found", body["message"])

	var count int64
	db.Model(&models.Favorite{}).Count(&count)
	assert.Zero(t, count)
}

func TestAddFavoritePerson(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)

	var body map[string]string
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodPost, "/favorite/people/"+itoa(s.yoda.ID)+"?user_id="+itoa(s.leia.ID), &body))
	assert.Equal(t, "Favorite character added successfully", body["message"])

	var favorites []models.Favorite
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/users/favorites?user_id="+itoa(s.leia.ID), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "Yoda", favorites[0].Name)
	assert.Equal(t, s.yoda.ID, *favorites[0].CharacterID)
	assert.Nil(t, favorites[0].PlanetID)

	body = nil
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodPost, "/favorite/people/999?user_id="+itoa(s.leia.ID), &body))
	assert.Equal(t, "person not found", body["message"])
}

func TestDeleteFavorite(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)
	favorite := models.Favorite{Name: "Hoth", UserID: s.luke.ID, PlanetID: &s.hoth.ID}
	require.NoError(t, db.Create(&favorite).Error)

	var body map[string]string
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodDelete, "/favorite/"+itoa(favorite.ID), &body))
	assert.Equal(t, "Favorite deleted successfully", body["message"])

	var favorites []models.Favorite
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/users/favorites?user_id="+itoa(s.luke.ID), &favorites))
	assert.Empty(t, favorites)

	body = nil
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodDelete, "/favorite/"+itoa(favorite.ID), &body))
	assert.Equal(t, map[string]string{"message": "Favorite not found"}, body)
}

func TestDeleteFavorite_LegacyEnvelope(t *testing.T) {
	app, _ := setupApp(t, appOptions{userFallback: true, legacyErrorEnvelope: true})

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodDelete, "/favorite/12", &body))
	assert.Equal(t, map[string]string{"error": "Favorite not found"}, body)
}

func TestDeleteFavoriteByTarget(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})
	s := seedStore(t, db)
	require.NoError(t, db.Create(&models.Favorite{Name: "Tatooine", UserID: s.luke.ID, PlanetID: &s.tatooine.ID}).Error)
	require.NoError(t, db.Create(&models.Favorite{Name: "Tatooine", UserID: s.leia.ID, PlanetID: &s.tatooine.ID}).Error)
	require.NoError(t, db.Create(&models.Favorite{Name: "Yoda", UserID: s.luke.ID, CharacterID: &s.yoda.ID}).Error)

	var body map[string]string
	planetPath := "/favorite/planet/" + itoa(s.tatooine.ID) + "?user_id=" + itoa(s.luke.ID)
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodDelete, planetPath, &body))
	assert.Equal(t, "Favorite planet deleted successfully", body["message"])

	body = nil
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodDelete, planetPath, &body))
	assert.Equal(t, "Favorite not found", body["message"])

	body = nil
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodDelete, "/favorite/people/"+itoa(s.yoda.ID)+"?user_id="+itoa(s.luke.ID), &body))
	assert.Equal(t, "Favorite character deleted successfully", body["message"])

	body = nil
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodDelete, "/favorite/people/"+itoa(s.yoda.ID)+"?user_id=999", &body))
	assert.Equal(t, "User not found", body["message"])

	// Leia's favorite survives
	var favorites []models.Favorite
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/users/favorites?user_id="+itoa(s.leia.ID), &favorites))
	assert.Len(t, favorites, 1)
}

func TestListUserFavorites_Fallback(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: true})

	// Empty store: nobody to fall back to
	var body map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/users/favorites", &body))
	assert.Equal(t, "User not found", body["message"])

	s := seedStore(t, db)
	require.NoError(t, db.Create(&models.Favorite{Name: "Hoth", UserID: s.luke.ID, PlanetID: &s.hoth.ID}).Error)

	for _, target := range []string{"/users/favorites", "/users/favorites?user_id=abc", "/users/favorites?user_id=999"} {
		var favorites []models.Favorite
		assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, target, &favorites), target)
		require.Len(t, favorites, 1, target)
		assert.Equal(t, s.luke.ID, favorites[0].UserID)
	}
}

func TestListUserFavorites_NoFallback(t *testing.T) {
	app, db := setupApp(t, appOptions{userFallback: false})
	seedStore(t, db)

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/users/favorites?user_id=999", &body))
	assert.Equal(t, "User not found", body["message"])
}

func TestSitemap(t *testing.T) {
	app, _ := setupApp(t, appOptions{userFallback: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	html := string(raw)
	assert.Contains(t, html, `<a href="http://example.com/people">/people</a>`)
	assert.Contains(t, html, "/favorite/:id&lt;int&gt;")
	assert.Contains(t, html, "<code>DELETE</code>")
	assert.NotContains(t, html, "<code>HEAD</code>")
}

func TestHealth(t *testing.T) {
	app, _ := setupApp(t, appOptions{userFallback: true})

	var body map[string]string
	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/health", &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
}

func TestNonNumericIDIsNotRouted(t *testing.T) {
	app, _ := setupApp(t, appOptions{userFallback: true})

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, doJSON(t, app, http.MethodGet, "/people/luke", &body))
	assert.Contains(t, body["message"], "Cannot GET")
}
