package utils

import "testing"

func TestContainsInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		substr   string
		expected bool
	}{
		{
			name:     "Exact match",
			s:        "database credentials exposed",
			substr:   "credentials",
			expected: true,
		},
		{
			name:     "Mixed case haystack",
			s:        "Unencrypted S3 Bucket",
			substr:   "unencrypted",
			expected: true,
		},
		{
			name:     "Mixed case needle",
			s:        "plaintext secrets in config",
			substr:   "SECRETS",
			expected: true,
		},
		{
			name:     "No match",
			s:        "outdated dependency",
			substr:   "injection",
			expected: false,
		},
		{
			name:     "Empty needle matches everything",
			s:        "anything",
			substr:   "",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ContainsInsensitive(tt.s, tt.substr)
			if result != tt.expected {
				t.Errorf("expected %t, got %t", tt.expected, result)
			}
		})
	}
}

func TestOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		def      string
		expected string
	}{
		{
			name:     "Nil pointer returns default",
			input:    nil,
			def:      "fallback",
			expected: "fallback",
		},
		{
			name:     "Non-nil pointer wins",
			input:    Ptr("value"),
			def:      "fallback",
			expected: "value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := OrDefault(tt.input, tt.def)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestSafeDereference(t *testing.T) {
	if SafeDereference(nil) != "" {
		t.Errorf("expected empty string for nil pointer")
	}
	if SafeDereference(Ptr("x")) != "x" {
		t.Errorf("expected x")
	}
}
