package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identPayload struct {
	UserID      string `json:"user_id" validate:"required,identifier,max=64"`
	DisplayName string `json:"display_name" validate:"max=100,displayname"`
	Internal    string `json:"-" validate:"max=1"`
}

func TestValidator_Identifier(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{"numeric id", "123456789", false},
		{"prefixed id", "discord:42", false},
		{"unicode id", "gärtner", false},
		{"max length", strings.Repeat("a", 64), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"space", "user 1", true},
		{"newline", "user\n1", true},
		{"null byte", "user\x001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(identPayload{UserID: tt.userID})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_DisplayName(t *testing.T) {
	assert.NoError(t, validate.Struct(identPayload{UserID: "u", DisplayName: "Ada Lovelace 🌻"}))
	assert.Error(t, validate.Struct(identPayload{UserID: "u", DisplayName: "bad\tname"}))
	assert.Error(t, validate.Struct(identPayload{UserID: "u", DisplayName: strings.Repeat("x", 101)}))
}

func TestFormatValidationError(t *testing.T) {
	err := validate.Struct(identPayload{UserID: "a b", DisplayName: "bad\x00name"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must not contain spaces or control characters", fields["user_id"])
	assert.Equal(t, "Must not contain control characters", fields["display_name"])

	fields = FormatValidationError(validate.Struct(identPayload{UserID: strings.Repeat("a", 70)}))
	assert.Equal(t, "Must be at most 64 characters", fields["user_id"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, "Invalid request format", FormatValidationError(assert.AnError)["error"])
}
