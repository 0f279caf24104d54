package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// Users are seed data here: the backend never registers or mutates them,
// it only resolves them as comment authors.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	CreatedAt time.Time // Account creation timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByIDs retrieves users by the given IDs. Missing IDs are
	// silently skipped.
	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}
