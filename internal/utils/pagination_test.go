package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationFor(t *testing.T, target string) Pagination {
	t.Helper()

	var got Pagination
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParsePagination(c)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParsePaginationDefaults(t *testing.T) {
	p := paginationFor(t, "/")
	assert.Equal(t, Pagination{Page: 1, Limit: 20, Offset: 0}, p)
}

func TestParsePagination(t *testing.T) {
	p := paginationFor(t, "/?page=3&limit=10")
	assert.Equal(t, Pagination{Page: 3, Limit: 10, Offset: 20}, p)
}

func TestParsePaginationCapsPageSize(t *testing.T) {
	p := paginationFor(t, "/?page=2&limit=5000")
	assert.Equal(t, Pagination{Page: 2, Limit: MaxPageSize, Offset: MaxPageSize}, p)
}

func TestParsePaginationClampsBadInput(t *testing.T) {
	p := paginationFor(t, "/?page=-1&limit=0")
	assert.Equal(t, Pagination{Page: 1, Limit: 20, Offset: 0}, p)

	p = paginationFor(t, "/?page=abc&limit=xyz")
	assert.Equal(t, Pagination{Page: 1, Limit: 20, Offset: 0}, p)
}
