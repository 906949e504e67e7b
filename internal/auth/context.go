package auth

import (
	"context"
	"errors"

	"github.com/saulo-duarte/okrun-lambda/internal/role"
)

type contextKey string

const actorKey contextKey = "actor"

var ErrNoActor = errors.New("no authenticated user in context")

// Actor is the authenticated user performing a request.
type Actor struct {
	UserID uint
	RoleID role.ID
}

func (a Actor) IsAdmin() bool { return a.RoleID == role.Admin }

// ActorResolver loads the stored role and status of a token's user. It returns
// an apperror not-found error for users that no longer exist.
type ActorResolver interface {
	ResolveActor(ctx context.Context, userID uint) (Actor, error)
}

// WithActor stores the acting user. Unknown role ids act as Member.
func WithActor(ctx context.Context, userID uint, roleID role.ID) context.Context {
	return context.WithValue(ctx, actorKey, Actor{UserID: userID, RoleID: roleID.Normalize()})
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.UserID == 0 {
		return Actor{}, ErrNoActor
	}
	return actor, nil
}
