//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"foodloop-server/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 3, 15, 10, 30, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(at, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.Equal(t, id, gotID)
	// Round trip keeps microsecond precision
	assert.Equal(t, at.UnixMicro(), gotTime.UnixMicro())
}

func TestDecodeAfterCursorRejectsGarbage(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "!!not-base64!!"},
		{name: "wrong version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.New().String()))},
		{name: "missing uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123"))},
		{name: "bad timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.New().String()))},
		{name: "bad uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
