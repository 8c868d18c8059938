package errors

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "diagram.puml", false},
		{"absolute", "/tmp/diagram.drawio", false},
		{"with spaces", "my diagrams/seq.puml", false},
		{"unicode", "diagramme/séquence.puml", false},
		{"empty", "", true},
		{"null byte", "seq\x00.puml", true},
		{"newline", "seq\n.puml", true},
		{"tab", "seq\t.puml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, Is(err, ErrCodeInvalidPath), "ValidatePath(%q) = %v, want %s", tt.path, err, ErrCodeInvalidPath)
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "seq.puml")

	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{"sibling file", filepath.Join(dir, "seq.drawio"), false},
		{"same path", input, true},
		{"same path uncleaned", filepath.Join(dir, ".", "sub", "..", "seq.puml"), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.output, input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, Is(err, ErrCodeInvalidPath), "ValidateOutputPath(%q) = %v", tt.output, err)
		})
	}
}
