package apierror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Envelope keys for the single-field JSON error body.
const (
	MessageKey = "message"
	ErrorKey   = "error"
)

// Error is an application error that maps to an HTTP status and a JSON body
// of the form {Key: Message}.
type Error struct {
	Code    int
	Message string
	Key     string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error rendered under the "message" key.
func New(code int, message string) *Error {
	return &Error{Code: code, Message: message, Key: MessageKey}
}

// NotFound creates a 404 Error.
func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

// WithKey returns a copy of e rendered under key instead of "message".
func (e *Error) WithKey(key string) *Error {
	c := *e
	c.Key = key
	return &c
}

// Handler renders errors returned by route handlers. Unknown errors are logged
// and become a 500 without leaking their text.
func Handler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *Error
		if errors.As(err, &appErr) {
			key := appErr.Key
			if key == "" {
				key = MessageKey
			}
			return c.Status(appErr.Code).JSON(fiber.Map{key: appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{MessageKey: fiberErr.Message})
		}

		log.WithError(err).
			WithField("method", c.Method()).
			WithField("path", c.Path()).
			Error("Unhandled error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			MessageKey: "Internal Server Error",
		})
	}
}
