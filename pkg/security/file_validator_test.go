package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     error
	}{
		{"pdf", "cv.pdf", []byte("%PDF-1.7\n"), nil},
		{"upper case extension", "CV.PDF", []byte("%PDF-1.4"), nil},
		{"empty file", "cv.pdf", nil, nil},
		{"wrong extension", "cv.docx", []byte("%PDF-1.4"), ErrResumeExtension},
		{"no extension", "cv", []byte("%PDF-1.4"), ErrResumeExtension},
		{"spoofed content", "cv.pdf", []byte{0x50, 0x4B, 0x03, 0x04}, ErrResumeContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateResume(tt.filename, tt.data), tt.want)
		})
	}
}
