package repository

import (
	"context"

	"github.com/polkiloo/procurement-console/internal/domain/model"
)

// SessionRepository resolves the operator behind the configured credentials.
type SessionRepository interface {
	CurrentUser(ctx context.Context) (*model.User, error)
}
