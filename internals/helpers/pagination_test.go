package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseWith(t *testing.T, target string, opt Options) Params {
	t.Helper()
	app := fiber.New()
	var got Params
	app.Get("/", func(c *fiber.Ctx) error {
		got = ParseFiber(c, opt)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestParseFiberDefaults(t *testing.T) {
	p := parseWith(t, "/", DefaultOpts)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 0, p.Offset())
}

func TestParseFiberClampsPerPage(t *testing.T) {
	p := parseWith(t, "/?page=3&per_page=9999", DefaultOpts)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 200, p.PerPage)
	assert.Equal(t, 400, p.Offset())
}

func TestParseFiberLimitAlias(t *testing.T) {
	p := parseWith(t, "/?limit=25", DefaultOpts)
	assert.Equal(t, 25, p.PerPage)
}

func TestParseFiberAllOnlyWhenAllowed(t *testing.T) {
	p := parseWith(t, "/?per_page=all", ExportOpts)
	assert.True(t, p.All)
	assert.Equal(t, 10_000, p.PerPage)

	p = parseWith(t, "/?per_page=all", DefaultOpts)
	assert.False(t, p.All)
	assert.Equal(t, DefaultOpts.DefaultPerPage, p.PerPage)
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(95, Params{Page: 2, PerPage: 10})
	assert.Equal(t, int64(95), m.Total)
	assert.Equal(t, 10, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = BuildMeta(0, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}
