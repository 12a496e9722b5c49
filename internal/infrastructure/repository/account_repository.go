package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/database"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

const accountColumns = "id, owner_id, institution_id, name, account_type, currency, created_at, updated_at"

// AccountRepository は口座リポジトリの実装です
type AccountRepository struct {
	*database.BaseRepository
}

// NewAccountRepository は新しいAccountRepositoryを作成します
func NewAccountRepository(txManager *database.TxManager) *AccountRepository {
	return &AccountRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// FindByID はIDで口座を検索します
// スコープに所有者制限がある場合、他人所有の行は不在として扱われる
func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Account, error) {
	query := "SELECT " + accountColumns + " FROM accounts WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	account, err := scanAccount(row)
	if err != nil {
		return nil, r.HandleError(err, "account")
	}
	return account, nil
}

// List は口座の一覧と総件数を返します
func (r *AccountRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.Account, int, error) {
	where := ""
	args := []any{}
	if ownerID, ok := scope.OwnerID(); ok {
		where = " WHERE owner_id = $1"
		args = append(args, ownerID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM accounts" + where
	if err := r.Querier(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, r.HandleError(err, "account")
	}

	query := "SELECT " + accountColumns + " FROM accounts" + where +
		" ORDER BY created_at DESC" +
		" OFFSET $" + placeholder(len(args)+1) + " LIMIT $" + placeholder(len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.HandleError(err, "account")
	}
	defer rows.Close()

	accounts := make([]*entity.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, 0, r.HandleError(err, "account")
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.HandleError(err, "account")
	}

	return accounts, total, nil
}

// Create は口座を作成します
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.Querier(ctx).Exec(ctx, query,
		account.ID,
		account.OwnerID,
		account.InstitutionID,
		account.Name,
		string(account.Type),
		account.Currency.String(),
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "account")
	}
	return account, nil
}

// Update は口座を更新します
// 対象行が消えている場合はNotFoundを返す
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	query := `
		UPDATE accounts
		SET institution_id = $2, name = $3, account_type = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, query,
		account.ID,
		account.InstitutionID,
		account.Name,
		string(account.Type),
		account.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "account")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError("account")
	}
	return account, nil
}

// Delete は口座を削除し、削除前の状態を返します
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Account, error) {
	query := "DELETE FROM accounts WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}
	query += " RETURNING " + accountColumns

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	account, err := scanAccount(row)
	if err != nil {
		return nil, r.HandleError(err, "account")
	}
	return account, nil
}

func scanAccount(row pgx.Row) (*entity.Account, error) {
	var (
		a           entity.Account
		accountType string
		currency    string
	)
	if err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.InstitutionID,
		&a.Name,
		&accountType,
		&currency,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Type = valueobject.AccountType(accountType)
	a.Currency = valueobject.Currency(currency)
	return &a, nil
}
