package services

import (
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"donna_landing_go/models"
	"donna_landing_go/services/i18n"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"
)

// ErrInvalidContactStatus is returned for unknown status filters
var ErrInvalidContactStatus = errors.New("invalid contact status")

// ContactSubmission is the contact form as posted by the browser
type ContactSubmission struct {
	Name           string `form:"name" validate:"required,max=100"`
	Email          string `form:"email" validate:"required,email,max=254"`
	Message        string `form:"message" validate:"required,max=5000"`
	TurnstileToken string `form:"cf-turnstile-response"`
}

// Normalize trims surrounding whitespace from every field
func (s *ContactSubmission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Message = strings.TrimSpace(s.Message)
}

// ContactMeta describes where a submission came from
type ContactMeta struct {
	IP        string
	UserAgent string
	Locale    string
}

// ValidateContactSubmission returns localized error messages keyed by form
// field. An empty map means the submission is valid.
func ValidateContactSubmission(lang string, s ContactSubmission) map[string]string {
	errs := make(map[string]string)
	fieldErrs, err := ValidateStruct(s)
	if err != nil {
		errs["form"] = i18n.Translate(lang, "contact.failed")
		return errs
	}
	for _, fe := range fieldErrs {
		if _, seen := errs[fe.Field]; seen {
			continue
		}
		label := i18n.Translate(lang, "fields."+fe.Field)
		switch fe.Tag {
		case "required":
			errs[fe.Field] = i18n.Translate(lang, "errors.required", map[string]interface{}{"field": label})
		case "email":
			errs[fe.Field] = i18n.Translate(lang, "errors.email")
		case "max":
			errs[fe.Field] = i18n.Translate(lang, "errors.max", map[string]interface{}{"field": label, "max": fe.Param})
		default:
			errs[fe.Field] = i18n.Translate(lang, "contact.failed")
		}
	}
	return errs
}

var contactPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all markup and returns plain text
func SanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(contactPolicy.Sanitize(s)))
}

// HashIP returns a keyed BLAKE2b-256 hash of ip, hex encoded. Raw addresses
// are never stored.
func HashIP(secret, ip string) string {
	if ip == "" {
		return ""
	}
	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, _ := blake2b.New256(key) // keys up to 64 bytes never fail
	h.Write([]byte(ip))
	return hex.EncodeToString(h.Sum(nil))
}

// CreateContactMessage sanitizes and stores a validated submission
func CreateContactMessage(db *gorm.DB, s ContactSubmission, meta ContactMeta, hashSecret string) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:      SanitizeText(s.Name),
		Email:     s.Email,
		Message:   SanitizeText(s.Message),
		Status:    models.ContactStatusNew,
		Locale:    meta.Locale,
		IPHash:    HashIP(hashSecret, meta.IP),
		UserAgent: truncate(meta.UserAgent, 512),
	}
	if msg.Name == "" || msg.Message == "" {
		return nil, fmt.Errorf("contact message is empty after sanitizing")
	}

	if err := db.Create(msg).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return msg, nil
}

// MarkContactNotified records that the team notification went out
func MarkContactNotified(db *gorm.DB, id string, at time.Time) error {
	result := db.Model(&models.ContactMessage{}).Where("id = ?", id).Update("notified_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to mark contact message notified: %w", result.Error)
	}
	return nil
}

// ContactFilter narrows ListContactMessages
type ContactFilter struct {
	Status string
	Since  time.Time
	Limit  int
}

// ListContactMessages returns messages newest first
func ListContactMessages(db *gorm.DB, filter ContactFilter) ([]models.ContactMessage, error) {
	query := db.Model(&models.ContactMessage{}).Order("created_at DESC")
	if filter.Status != "" {
		if !models.IsValidContactStatus(filter.Status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidContactStatus, filter.Status)
		}
		query = query.Where("status = ?", filter.Status)
	}
	if !filter.Since.IsZero() {
		query = query.Where("created_at >= ?", filter.Since)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var messages []models.ContactMessage
	if err := query.Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

// PurgeContactMessages permanently deletes messages created before cutoff
func PurgeContactMessages(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.ContactMessage{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge contact messages: %w", result.Error)
	}
	return result.RowsAffected, nil
}
