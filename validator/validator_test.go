package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestEpicKeyParams struct {
	EpicKey string `json:"epic_key" validate:"required,epickey"`
}

type TestEpicKeysRequest struct {
	EpicKeys []string `json:"epic_keys" validate:"required,min=1,max=3,dive,required,epickey"`
}

func TestValidator_EpicKey(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		key       string
		wantError bool
		errorMsg  string
	}{
		{name: "Jira style key", key: "EPIC-123"},
		{name: "Free text key", key: "Dark mode (v2) & themes"},
		{name: "Unicode key", key: "épico-ñ"},
		{name: "Missing key", key: "", wantError: true, errorMsg: "epic_key is required"},
		{name: "Blank key", key: "   ", wantError: true, errorMsg: "non-blank"},
		{name: "Control character", key: "EPIC\n1", wantError: true, errorMsg: "control characters"},
		{name: "Too long", key: strings.Repeat("x", MaxEpicKeyLength+1), wantError: true},
		{name: "Longest allowed", key: strings.Repeat("x", MaxEpicKeyLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&TestEpicKeyParams{EpicKey: tt.key})

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_EpicKeys(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		keys      []string
		wantError bool
		errorMsg  string
	}{
		{name: "Valid list", keys: []string{"A", "B"}},
		{name: "Duplicates are allowed", keys: []string{"A", "A"}},
		{name: "Missing list", keys: nil, wantError: true, errorMsg: "epic_keys is required"},
		{name: "Empty list", keys: []string{}, wantError: true, errorMsg: "at least 1 items"},
		{name: "Too many keys", keys: []string{"A", "B", "C", "D"}, wantError: true, errorMsg: "at most 3 items"},
		{name: "Blank element", keys: []string{"A", ""}, wantError: true, errorMsg: "epic_keys[1] is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&TestEpicKeysRequest{EpicKeys: tt.keys})

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationErrors_Fields(t *testing.T) {
	v := New()

	err := v.Validate(&TestEpicKeyParams{EpicKey: ""})
	require.Error(t, err)

	errs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "epic_key", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
}
