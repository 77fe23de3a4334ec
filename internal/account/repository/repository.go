package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/DuDupedrosa/krt-bank/internal/models"
)

var (
	// ErrNotFound means no row exists for the given identifier.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateNationalID means the partial unique index on active
	// national IDs rejected the write. The index is the final arbiter for
	// uniqueness: the service-level pre-check is only a fast fail.
	ErrDuplicateNationalID = errors.New("national id already registered to an active account")
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

// AccountRepository is the durable store for accounts, backed by PostgreSQL.
// Rows are never physically deleted; a delete is an update to status INACTIVE.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, name, national_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.NationalID, account.Status,
		account.CreatedAt, account.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateNationalID
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT id, name, national_id, status, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetActiveByNationalID returns the ACTIVE account holding the given national
// ID, if any. Inactive holders are ignored: a deactivated account's national
// ID may be reused.
func (r *AccountRepository) GetActiveByNationalID(ctx context.Context, nationalID string) (*models.Account, error) {
	query := `
		SELECT id, name, national_id, status, created_at, updated_at
		FROM accounts
		WHERE national_id = $1 AND status = $2
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, nationalID, models.StatusActive))
}

// AnotherActiveHoldsNationalID reports whether an ACTIVE account other than id
// already holds nationalID.
func (r *AccountRepository) AnotherActiveHoldsNationalID(ctx context.Context, id, nationalID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounts
			WHERE national_id = $1 AND id <> $2 AND status = $3
		)
	`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, nationalID, id, models.StatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check national id ownership: %w", err)
	}
	return exists, nil
}

// Update persists the mutable fields of an account, including the status flip
// that implements soft delete.
func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, national_id = $3, status = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.NationalID, account.Status, account.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateNationalID
	}
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns one page of accounts matching the optional filter and status,
// ordered by creation time. The total and page counts cover the whole
// filtered set, not just the returned page.
func (r *AccountRepository) List(ctx context.Context, filter string, status *models.AccountStatus, order models.Order, page int) (*models.AccountPage, error) {
	if page < 1 {
		page = 1
	}
	where, args := listFilters(filter, status)

	var total int
	countQuery := "SELECT COUNT(*) FROM accounts" + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, national_id, status, created_at, updated_at
		FROM accounts%s
		ORDER BY created_at %s
		LIMIT %d OFFSET %d
	`, where, orderClause(order), models.PageSize, (page-1)*models.PageSize)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(
			&account.ID, &account.Name, &account.NationalID,
			&account.Status, &account.CreatedAt, &account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	return &models.AccountPage{
		Accounts: accounts,
		Paginate: models.Pagination{
			Page:       page,
			PageSize:   models.PageSize,
			PageCount:  PageCount(total),
			TotalCount: total,
		},
	}, nil
}

// listFilters builds the WHERE clause for List. The filter is a
// case-insensitive substring match on name or national ID.
func listFilters(filter string, status *models.AccountStatus) (string, []any) {
	var clauses []string
	var args []any

	if trimmed := strings.TrimSpace(filter); trimmed != "" {
		args = append(args, "%"+trimmed+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR national_id ILIKE $%d)", n, n))
	}
	if status != nil {
		args = append(args, *status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderClause(order models.Order) string {
	if order == models.OrderAscending {
		return "ASC"
	}
	return "DESC"
}

// PageCount is ceil(total / PageSize).
func PageCount(total int) int {
	return (total + models.PageSize - 1) / models.PageSize
}

func (r *AccountRepository) scanOne(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID, &account.Name, &account.NationalID,
		&account.Status, &account.CreatedAt, &account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
