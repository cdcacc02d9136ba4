package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("pw1"), HashPassword("pw1"))
	assert.NotEqual(t, HashPassword("pw1"), HashPassword("pw2"))
}

func TestHashPasswordKnownDigest(t *testing.T) {
	// sha256("password"), matching rows written by earlier deployments
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", HashPassword("password"))
	assert.Len(t, HashPassword(""), 64)
}

func TestHashPasswordNotPlaintext(t *testing.T) {
	assert.NotContains(t, HashPassword("hunter2"), "hunter2")
}
