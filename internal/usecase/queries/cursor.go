package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"fitbook/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultReviewPageSize = 20
	MaxListLimit          = 100
)

// Cursor is an opaque keyset position over (created_at DESC, id DESC).
type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microseconds, the precision PostgreSQL stores.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := strconv.FormatInt(t.UnixMicro(), 10) + "|" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "decode cursor")
	}
	micros, idPart, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("cursor has no separator")
	}
	us, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor timestamp")
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor id")
	}
	return time.UnixMicro(us).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultReviewPageSize
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
