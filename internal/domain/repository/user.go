package repository

import (
	"context"

	"github.com/spinzone/backend/internal/domain/model"
)

// UserRepository describes persistence operations with users.
type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
