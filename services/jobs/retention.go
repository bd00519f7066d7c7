package jobs

import (
	"log"
	"time"

	"donna_landing_go/config"
	"donna_landing_go/models"
	"donna_landing_go/services"

	"gorm.io/gorm"
)

// PurgeExpiredContactMessages deletes contact messages older than the
// configured retention window.
func PurgeExpiredContactMessages(database *gorm.DB, cfg *config.Config) {
	if cfg.ContactRetention <= 0 {
		return
	}
	cutoff := time.Now().UTC().Add(-cfg.ContactRetention)

	purged, err := services.PurgeContactMessages(database, cutoff)
	if err != nil {
		log.Printf("Error purging contact messages: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("[INFO] Purged %d contact messages older than %s", purged, cutoff.Format(time.RFC3339))
	}
}

// notificationGrace leaves time for the in-request async send to finish
const notificationGrace = 10 * time.Minute

// RetryContactNotifications re-sends team notifications that never went out,
// e.g. because the provider was down or the process restarted mid-send.
func RetryContactNotifications(database *gorm.DB, cfg *config.Config) {
	now := time.Now().UTC()

	var pending []models.ContactMessage
	err := database.
		Where("notified_at IS NULL").
		Where("status = ?", models.ContactStatusNew).
		Where("created_at <= ?", now.Add(-notificationGrace)).
		Order("created_at ASC").
		Limit(50).
		Find(&pending).Error
	if err != nil {
		log.Printf("Error fetching unnotified contact messages: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	log.Printf("Retrying notifications for %d contact messages", len(pending))

	for _, msg := range pending {
		email := services.BuildContactNotificationEmail(cfg.ContactInbox, services.ContactEmailData{
			ID:         msg.ID,
			Name:       msg.Name,
			Email:      msg.Email,
			Message:    msg.Message,
			Locale:     msg.Locale,
			ReceivedAt: services.FormatReceivedAt(msg.CreatedAt),
		})

		if err := services.SendEmail(cfg, email); err != nil {
			log.Printf("Failed to send notification for contact message %s: %v", msg.ID, err)
			continue
		}

		if err := services.MarkContactNotified(database, msg.ID, now); err != nil {
			log.Printf("Failed to mark contact message %s notified: %v", msg.ID, err)
		}
	}
}
