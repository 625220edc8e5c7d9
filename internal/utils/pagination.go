package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultPageSize applies when the client does not specify a limit.
	DefaultPageSize = 20

	// MaxPageSize caps how many records a single page may request.
	MaxPageSize = 100
)

// Pagination holds the sanitized paging window for a list request.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

// ParsePagination reads page and limit query params, clamping anything
// out of range back to sane values.
func ParsePagination(c *fiber.Ctx) Pagination {
	page := atoiOr(c.Query("page"), 1)
	limit := atoiOr(c.Query("limit"), DefaultPageSize)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func atoiOr(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
