// Package users persists registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/swingnotes/internal/server/models"
)

// Repository stores users. Create returns common.ErrDuplicateUsername when
// the username is taken; FindByUsername returns common.ErrorNotFound when it
// is not.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUsername(ctx context.Context, userName string) (*models.User, error)
}
