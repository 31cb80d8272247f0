package logger

import "testing"

func TestRedactEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"john.doe@example.com", "jo***@example.com"},
		{"ab@example.com", "***@example.com"},
		{"x@example.com", "***@example.com"},
		{"not-an-email", "***@***"},
		{"", "***@***"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RedactEmail(tt.in); got != tt.want {
				t.Errorf("RedactEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRedactPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+15551234567", "***4567"},
		{"555-123-4567", "***4567"},
		{"911", "***"},
		{"", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RedactPhone(tt.in); got != tt.want {
				t.Errorf("RedactPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
