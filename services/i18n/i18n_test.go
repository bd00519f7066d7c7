package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	nested := map[string]interface{}{
		"nav": map[string]interface{}{
			"features": "Features",
			"menu": map[string]interface{}{
				"open": "Open menu",
			},
		},
		"count": 123,
	}

	flat := make(map[string]string)
	flatten("", nested, flat)

	assert.Equal(t, "Features", flat["nav.features"])
	assert.Equal(t, "Open menu", flat["nav.menu.open"])
	assert.Equal(t, "123", flat["count"])
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		args     map[string]interface{}
		expected string
	}{
		{"No placeholders", "Send Message", nil, "Send Message"},
		{"Single placeholder", "Go to testimonial {n}", map[string]interface{}{"n": 2}, "Go to testimonial 2"},
		{"Multiple placeholders", "{field} must be at most {max} characters", map[string]interface{}{"field": "Name", "max": 100}, "Name must be at most 100 characters"},
		{"Missing argument", "Hello {name}", map[string]interface{}{"other": "val"}, "Hello {name}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result string
			if tt.args == nil {
				result = format(tt.text)
			} else {
				result = format(tt.text, tt.args)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLocale(t *testing.T) {
	assert.Equal(t, "en", GetLocale(context.Background()))
	assert.Equal(t, "hi", GetLocale(WithLocale(context.Background(), "hi")))
	assert.Equal(t, "en", GetLocale(WithLocale(context.Background(), "")))
}

func TestTranslateFallbacks(t *testing.T) {
	mutex.Lock()
	oldTrans := translations
	translations = map[string]map[string]string{
		"en": {"test.hello": "Hello", "test.welcome": "Welcome {name}"},
		"hi": {"test.hello": "नमस्ते"},
	}
	mutex.Unlock()

	defer func() {
		mutex.Lock()
		translations = oldTrans
		mutex.Unlock()
	}()

	assert.Equal(t, "नमस्ते", Translate("hi", "test.hello"))
	assert.Equal(t, "Hello", Translate("en", "test.hello"))
	assert.Equal(t, "Welcome Asha", Translate("hi", "test.welcome", map[string]interface{}{"name": "Asha"}))
	assert.Equal(t, "missing.key", Translate("hi", "missing.key"))
	assert.Equal(t, "Hello", Translate("fr", "test.hello"))

	ctx := WithLocale(context.Background(), "hi")
	assert.Equal(t, "नमस्ते", T(ctx, "test.hello"))
}

func TestLoadEmbeddedLocales(t *testing.T) {
	require.NoError(t, Load())

	assert.Equal(t, []string{"en", "hi"}, Languages())
	assert.True(t, IsSupported("hi"))
	assert.False(t, IsSupported("es"))

	assert.Equal(t, "Send Message", Translate("en", "contact.submit"))
	assert.Equal(t, "संदेश भेजें", Translate("hi", "contact.submit"))
	// hi has no notification subject; the team inbox reads English
	assert.Equal(t, "New contact message from Ravi", Translate("hi", "email.subject.contact_notification", map[string]interface{}{"name": "Ravi"}))
}
