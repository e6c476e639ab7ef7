package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pathID reads the positive integer route parameter "id".
func pathID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryUserID reads the user_id query parameter. It returns nil when the
// parameter is missing or not a positive integer.
func queryUserID(c *fiber.Ctx) *uint {
	id, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil || id == 0 {
		return nil
	}
	userID := uint(id)
	return &userID
}
