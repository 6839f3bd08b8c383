package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peopledesk/hrops-backend-go/internal/domain/user"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
)

type accountRepository struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) user.AccountRepository {
	return &accountRepository{db: db}
}

// Create implements user.AccountRepository.
func (r *accountRepository) Create(ctx context.Context, account user.Account) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO accounts (name, email, password_hash, role, is_verified)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		account.Name,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.IsVerified,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.Account{}, user.ErrEmailExists
		}
		return user.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// FindByEmail implements user.AccountRepository.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, is_verified, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var account user.Account
	err := q.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash,
		&account.Role, &account.IsVerified, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Account{}, user.ErrAccountNotFound
		}
		return user.Account{}, fmt.Errorf("failed to find account by email: %w", err)
	}

	return account, nil
}

// FindByID implements user.AccountRepository.
func (r *accountRepository) FindByID(ctx context.Context, id string) (user.Account, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, is_verified, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	var account user.Account
	err := q.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.Name, &account.Email, &account.PasswordHash,
		&account.Role, &account.IsVerified, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Account{}, user.ErrAccountNotFound
		}
		return user.Account{}, fmt.Errorf("failed to find account by id: %w", err)
	}

	return account, nil
}

// UpdatePassword implements user.AccountRepository.
func (r *accountRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE accounts SET password_hash = $2, updated_at = NOW() WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrAccountNotFound
	}

	return nil
}
