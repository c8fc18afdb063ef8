package user

import "github.com/google/uuid"

// Actor is the authenticated caller of a command. Identity is issued elsewhere.
type Actor struct {
	id   uuid.UUID
	role Role
}

func NewActor(id uuid.UUID, role Role) (Actor, error) {
	if id == uuid.Nil {
		return Actor{}, ErrMissingActor
	}
	if !role.IsValid() {
		return Actor{}, ErrInvalidRole
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() uuid.UUID { return a.id }
func (a Actor) Role() Role    { return a.role }
func (a Actor) IsAdmin() bool { return a.role == RoleAdmin }
func (a Actor) IsZero() bool  { return a.id == uuid.Nil }
