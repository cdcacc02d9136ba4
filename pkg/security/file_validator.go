package security

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrResumeExtension = errors.New("resume must be a .pdf file")
	ErrResumeContent   = errors.New("resume content is not a PDF document")
)

// %PDF
var pdfMagic = []byte{0x25, 0x50, 0x44, 0x46}

// ValidateResume checks an uploaded resume before it is stored:
// 1. Extension must be .pdf
// 2. Non-empty content must start with the PDF signature
//
// An empty file passes; the stored bytes are whatever was uploaded.
func ValidateResume(filename string, data []byte) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return ErrResumeExtension
	}

	if len(data) > 0 && !bytes.HasPrefix(data, pdfMagic) {
		return ErrResumeContent
	}
	return nil
}
