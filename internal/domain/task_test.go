package domain

import (
	"testing"
)

func TestValidateTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "valid title", title: "Write report", wantErr: nil},
		{name: "title with surrounding spaces", title: "  trimmed  ", wantErr: nil},
		{name: "empty title", title: "", wantErr: ErrEmptyTaskTitle},
		{name: "whitespace-only title", title: "   ", wantErr: ErrEmptyTaskTitle},
		{name: "tabs and newlines only", title: "\t\n ", wantErr: ErrEmptyTaskTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if err != tt.wantErr {
				t.Errorf("ValidateTitle(%q) = %v, want %v", tt.title, err, tt.wantErr)
			}
		})
	}
}
