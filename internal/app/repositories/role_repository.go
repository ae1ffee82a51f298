package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/initi8now/waitlist/internal/pkg/dberrors"
)

// RoleRepository handles database operations for role memberships
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
	}
}

// HasRole checks whether a role row exists for the user. Protected routes
// call this on every request so that a revoked role takes effect
// immediately.
func (r *RoleRepository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`,
		userID, role).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking role membership: %w", err)
	}

	return exists, nil
}

// AssignRole grants a role to a user. Assigning an already-granted role is
// a no-op.
func (r *RoleRepository) AssignRole(ctx context.Context, userID uuid.UUID, role string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`,
		userID, role)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("error assigning role: %w", err)
	}

	return nil
}
