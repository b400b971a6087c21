package services

import (
	"testing"
	"time"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"abc123", true},
		{"longpassword1", true},
		{"a1b2c", false},  // too short
		{"123456", false}, // no letter
		{"abcdef", false}, // no digit
		{"", false},
	}
	for _, tt := range tests {
		if got := validPassword(tt.password); got != tt.want {
			t.Errorf("validPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestValidMobile(t *testing.T) {
	tests := []struct {
		mobile string
		want   bool
	}{
		{"1234567890", true},
		{"+49 (30) 123-456-78", true},
		{"12345", false},
		{"12345678901234567", false},
		{"abcdefghij", false},
	}
	for _, tt := range tests {
		if got := validMobile(tt.mobile); got != tt.want {
			t.Errorf("validMobile(%q) = %v, want %v", tt.mobile, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2025-06-15T18:00:00Z", true},
		{"2025-06-15T18:00", true},
		{"2025-06-15", true},
		{"15/06/2025", false},
		{"soon", false},
	}
	for _, tt := range tests {
		if _, ok := parseDate(tt.value); ok != tt.ok {
			t.Errorf("parseDate(%q) ok = %v, want %v", tt.value, ok, tt.ok)
		}
	}
}

func TestValidAge(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		dob  time.Time
		want bool
	}{
		{"exactly 13", time.Date(2013, 9, 1, 0, 0, 0, 0, time.UTC), true},
		{"day short of 13", time.Date(2013, 9, 2, 0, 0, 0, 0, time.UTC), false},
		{"adult", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"over 120", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validAge(tt.dob, now); got != tt.want {
				t.Errorf("validAge(%v) = %v, want %v", tt.dob, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := normalizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Errorf("normalizeEmail = %q", got)
	}
}
