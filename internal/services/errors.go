package services

import "errors"

var (
	// ErrUserNotFound means the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrCharacterNotFound means the requested character does not exist.
	ErrCharacterNotFound = errors.New("character not found")
	// ErrPlanetNotFound means the requested planet does not exist.
	ErrPlanetNotFound = errors.New("planet not found")
	// ErrFavoriteNotFound means no favorite matched the request.
	ErrFavoriteNotFound = errors.New("favorite not found")
)
