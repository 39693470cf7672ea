package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/petpal-api/internal/models"
)

// Owned is implemented by every user-scoped entity.
type Owned interface {
	GetOwnerID() uuid.UUID
}

// authorize resolves rawID to an entity owned by user.
// A malformed id is a ValidationError. A missing entity and an entity owned by
// another user both yield the same NotFoundError.
func authorize[T any, P interface {
	*T
	Owned
}](
	ctx context.Context,
	user *models.User,
	entity string,
	rawID string,
	fetch func(ctx context.Context, id uuid.UUID) (P, error),
) (P, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, invalidField("", "invalid "+entity+" id")
	}

	res, err := fetch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", entity, err)
	}
	if res == nil || res.GetOwnerID() != user.ID {
		return nil, &NotFoundError{Entity: entity}
	}

	return res, nil
}
