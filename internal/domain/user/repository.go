package user

import "context"

// AccountRepository resolves identities across both roles with single
// queries against the unified accounts table.
type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)

	// FindByEmail resolves any account, admin or employee, by email
	FindByEmail(ctx context.Context, email string) (Account, error)

	// FindByID resolves any account by ID
	FindByID(ctx context.Context, id string) (Account, error)

	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
