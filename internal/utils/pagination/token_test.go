package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	paidAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(paidAt, "evt-123")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeToken(token)
	assert.NoError(t, err)
	assert.Equal(t, paidAt, decodedAt)
	assert.Equal(t, "evt-123", decodedID)

	// Non-UTC times are normalised.
	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2024, 5, 15, 20, 0, 0, 0, ist)
	decodedAt, _, err = DecodeToken(EncodeToken(local, "evt-1"))
	assert.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|evt-1"))
	_, _, err = DecodeToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "paid_at parse")
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0, 20, 100))
	assert.Equal(t, 20, ClampLimit(-3, 20, 100))
	assert.Equal(t, 50, ClampLimit(50, 20, 100))
	assert.Equal(t, 100, ClampLimit(500, 20, 100))
}
