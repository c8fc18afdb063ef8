//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"fitbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("keeps microsecond precision", func(t *testing.T) {
		at := time.Date(2030, 5, 1, 9, 0, 0, 123456789, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))
		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.True(t, at.Truncate(time.Microsecond).Equal(gotAt))
	})

	malformed := map[string]string{
		"empty":        "",
		"not base64":   "%%%",
		"no separator": base64.RawURLEncoding.EncodeToString([]byte("1700000000")),
		"bad time":     base64.RawURLEncoding.EncodeToString([]byte("abc|" + uuid.NewString())),
		"bad id":       base64.RawURLEncoding.EncodeToString([]byte("1700000000|nope")),
	}
	for name, c := range malformed {
		t.Run("rejects "+name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(c)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultReviewPageSize, queries.ValidateLimit(0))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
