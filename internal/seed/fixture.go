package seed

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Fixture is the content of a seed file. Favorites refer to users by email and
// to targets by name, so those must be unique within the file.
type Fixture struct {
	Users      []UserFixture      `mapstructure:"users" validate:"unique=Email,dive"`
	Characters []CharacterFixture `mapstructure:"characters" validate:"unique=Name,dive"`
	Planets    []PlanetFixture    `mapstructure:"planets" validate:"unique=Name,dive"`
	Favorites  []FavoriteFixture  `mapstructure:"favorites" validate:"dive"`
}

type UserFixture struct {
	Username string `mapstructure:"username" validate:"omitempty,max=120"`
	Email    string `mapstructure:"email" validate:"required,email,max=120"`
	Password string `mapstructure:"password" validate:"required"`
}

type CharacterFixture struct {
	Name      string  `mapstructure:"name" validate:"required,max=250"`
	EyeColor  *string `mapstructure:"eye_color"`
	Height    *int    `mapstructure:"height"`
	BirthYear *string `mapstructure:"birth_year"`
}

type PlanetFixture struct {
	Name           string  `mapstructure:"name" validate:"required,max=250"`
	Diameter       *int    `mapstructure:"diameter"`
	RotationPeriod *int    `mapstructure:"rotation_period"`
	Climate        *string `mapstructure:"climate"`
}

// FavoriteFixture references its user by email and its target by name.
// Exactly one of Planet and Character must be set.
type FavoriteFixture struct {
	UserEmail string `mapstructure:"user_email" validate:"required,email"`
	Planet    string `mapstructure:"planet" validate:"required_without=Character,excluded_with=Character"`
	Character string `mapstructure:"character" validate:"required_without=Planet,excluded_with=Planet"`
}

// LoadFile reads and validates a YAML or JSON seed file. The format is chosen
// from the file extension.
func LoadFile(path string) (*Fixture, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var fixture Fixture
	if err := v.Unmarshal(&fixture); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", path, err)
	}
	if err := Validate(&fixture); err != nil {
		return nil, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return &fixture, nil
}

// Validate checks field constraints on every record of the fixture.
func Validate(fixture *Fixture) error {
	validate := validator.New()
	if err := validate.Struct(fixture); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			first := validationErrors[0]
			return fmt.Errorf("field '%s' failed on the '%s' tag (%d errors)", first.Namespace(), first.Tag(), len(validationErrors))
		}
		return err
	}
	return nil
}
