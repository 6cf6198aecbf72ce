package utils

import (
	"testing"
	"time"
)

func TestFormatarDataLonga(t *testing.T) {
	tests := []struct {
		name     string
		data     time.Time
		expected string
	}{
		{
			name:     "março com acento",
			data:     time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC),
			expected: "14 de Março de 2024",
		},
		{
			name:     "primeiro de janeiro",
			data:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: "1 de Janeiro de 2026",
		},
		{
			name:     "dezembro",
			data:     time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
			expected: "31 de Dezembro de 2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatarDataLonga(tt.data); got != tt.expected {
				t.Errorf("FormatarDataLonga = %q, esperado %q", got, tt.expected)
			}
		})
	}
}
