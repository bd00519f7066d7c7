package jobs

import (
	"fmt"
	"testing"
	"time"

	"donna_landing_go/config"
	"donna_landing_go/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRetentionTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:mem_%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))
	return db
}

func TestPurgeExpiredContactMessages(t *testing.T) {
	db := setupRetentionTestDB(t)
	cfg := &config.Config{ContactRetention: 30 * 24 * time.Hour}

	now := time.Now().UTC()
	old := models.ContactMessage{Name: "old", Email: "o@example.com", Message: "m", CreatedAt: now.AddDate(0, 0, -31)}
	fresh := models.ContactMessage{Name: "fresh", Email: "f@example.com", Message: "m", CreatedAt: now.AddDate(0, 0, -1)}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, db.Create(&fresh).Error)

	PurgeExpiredContactMessages(db, cfg)

	var names []string
	db.Unscoped().Model(&models.ContactMessage{}).Pluck("name", &names)
	assert.Equal(t, []string{"fresh"}, names)
}

func TestPurgeDisabledWithoutRetention(t *testing.T) {
	db := setupRetentionTestDB(t)

	old := models.ContactMessage{Name: "old", Email: "o@example.com", Message: "m", CreatedAt: time.Now().AddDate(-5, 0, 0)}
	require.NoError(t, db.Create(&old).Error)

	PurgeExpiredContactMessages(db, &config.Config{})

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRetryContactNotifications(t *testing.T) {
	db := setupRetentionTestDB(t)
	cfg := &config.Config{EmailTestMode: true, ContactInbox: "team@example.com"}

	now := time.Now().UTC()
	notified := now.Add(-time.Hour)
	stale := models.ContactMessage{Name: "stale", Email: "s@example.com", Message: "m", CreatedAt: now.Add(-time.Hour)}
	tooNew := models.ContactMessage{Name: "new", Email: "n@example.com", Message: "m", CreatedAt: now}
	done := models.ContactMessage{Name: "done", Email: "d@example.com", Message: "m", CreatedAt: now.Add(-time.Hour), NotifiedAt: &notified}
	answered := models.ContactMessage{Name: "answered", Email: "a@example.com", Message: "m", Status: models.ContactStatusAnswered, CreatedAt: now.Add(-time.Hour)}
	for _, m := range []*models.ContactMessage{&stale, &tooNew, &done, &answered} {
		require.NoError(t, db.Create(m).Error)
	}

	RetryContactNotifications(db, cfg)

	load := func(id string) models.ContactMessage {
		var m models.ContactMessage
		require.NoError(t, db.First(&m, "id = ?", id).Error)
		return m
	}

	assert.NotNil(t, load(stale.ID).NotifiedAt, "stale message should be notified")
	assert.Nil(t, load(tooNew.ID).NotifiedAt, "recent message is left to the request path")
	assert.Nil(t, load(answered.ID).NotifiedAt)
}
