package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactStatusNew       = "new"
	ContactStatusAnswered  = "answered"
	ContactStatusDiscarded = "discarded"
)

// ContactMessage is a submission of the landing page contact form
type ContactMessage struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:254;not null;index" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"size:20;not null;default:new;index" json:"status"` // new, answered, discarded
	Locale  string `gorm:"size:5" json:"locale"`

	// Submitter metadata. The IP address is only kept as a keyed hash.
	IPHash    string `gorm:"size:64" json:"-"`
	UserAgent string `gorm:"type:text" json:"-"`

	NotifiedAt *time.Time `json:"notified_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Status == "" {
		m.Status = ContactStatusNew
	}
	return nil
}

// TableName specifies the table name for ContactMessage model
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// IsValidContactStatus reports whether status is a known contact message status
func IsValidContactStatus(status string) bool {
	switch status {
	case ContactStatusNew, ContactStatusAnswered, ContactStatusDiscarded:
		return true
	}
	return false
}
