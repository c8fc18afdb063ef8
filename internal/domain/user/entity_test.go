//go:build unit

package user_test

import (
	"testing"

	"fitbook/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	cases := []struct {
		in    string
		want  user.Role
		errIs error
	}{
		{in: "CLIENT", want: user.RoleClient},
		{in: "COACH", want: user.RoleCoach},
		{in: "ADMIN", want: user.RoleAdmin},
		{in: "client", errIs: user.ErrInvalidRole},
		{in: "", errIs: user.ErrInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := user.NewRole(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestActor(t *testing.T) {
	t.Run("valid actor", func(t *testing.T) {
		id := uuid.New()
		a, err := user.NewActor(id, user.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, id, a.ID())
		assert.True(t, a.IsAdmin())
		assert.False(t, a.IsZero())
	})

	t.Run("nil id is rejected", func(t *testing.T) {
		_, err := user.NewActor(uuid.Nil, user.RoleClient)
		assert.ErrorIs(t, err, user.ErrMissingActor)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := user.NewActor(uuid.New(), user.Role("viewer"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
