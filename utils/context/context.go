package context

import (
	"context"

	"github.com/bobursolih/market-backend/constant"
	"github.com/bobursolih/market-backend/model"
)

// WithActor stores the authenticated actor on the request context.
func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

// GetActor returns the actor set by the auth middleware.
func GetActor(ctx context.Context) (model.Actor, bool) {
	actor, ok := ctx.Value(constant.ActorKey).(model.Actor)
	return actor, ok
}

func GetUserID(ctx context.Context) (uint64, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return 0, false
	}
	return actor.ID, true
}
