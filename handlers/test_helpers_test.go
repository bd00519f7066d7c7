package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"donna_landing_go/config"
	"donna_landing_go/db"
	"donna_landing_go/models"
	"donna_landing_go/services/i18n"
	"donna_landing_go/services/landing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = testDB.AutoMigrate(&models.ContactMessage{})
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		AppURL:        "https://donna.example",
		ProductAppURL: "https://app.donna.example/",
		HashSecret:    "test-hash-secret",
		EmailTestMode: true,
		ContactInbox:  "team@donna.example",
	}
}

func testLandingPage(t *testing.T) *landing.Page {
	t.Helper()
	require.NoError(t, i18n.Load())
	content, err := landing.LoadContent("")
	require.NoError(t, err)
	p, err := landing.Build(content, landing.Timings{}, nil)
	require.NoError(t, err)
	return p
}

func setupEcho(t *testing.T, method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set(ConfigKey, testConfig())
	c.Set(LandingKey, testLandingPage(t))

	return e, c, rec
}
