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

const transactionColumns = "id, owner_id, account_id, asset_id, transaction_kind, amount, currency, quantity, description, occurred_at, created_at, updated_at"

// TransactionRepository は取引リポジトリの実装です
type TransactionRepository struct {
	*database.BaseRepository
}

// NewTransactionRepository は新しいTransactionRepositoryを作成します
func NewTransactionRepository(txManager *database.TxManager) *TransactionRepository {
	return &TransactionRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// FindByID はIDで取引を検索します
func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, r.HandleError(err, "transaction")
	}
	return transaction, nil
}

// List は取引の一覧と総件数を返します
// 発生日時の降順で返す
func (r *TransactionRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.Transaction, int, error) {
	where := ""
	args := []any{}
	if ownerID, ok := scope.OwnerID(); ok {
		where = " WHERE owner_id = $1"
		args = append(args, ownerID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM transactions" + where
	if err := r.Querier(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, r.HandleError(err, "transaction")
	}

	query := "SELECT " + transactionColumns + " FROM transactions" + where +
		" ORDER BY occurred_at DESC, id DESC" +
		" OFFSET $" + placeholder(len(args)+1) + " LIMIT $" + placeholder(len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.HandleError(err, "transaction")
	}
	defer rows.Close()

	transactions := make([]*entity.Transaction, 0)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, r.HandleError(err, "transaction")
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.HandleError(err, "transaction")
	}

	return transactions, total, nil
}

// Create は取引を作成します
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.Querier(ctx).Exec(ctx, query,
		transaction.ID,
		transaction.OwnerID,
		transaction.AccountID,
		transaction.AssetID,
		string(transaction.Kind),
		transaction.Amount.Amount(),
		transaction.Amount.Currency().String(),
		transaction.Quantity,
		transaction.Description,
		transaction.OccurredAt,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "transaction")
	}
	return transaction, nil
}

// Update は取引を更新します
// 対象行が消えている場合はNotFoundを返す
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) (*entity.Transaction, error) {
	query := `
		UPDATE transactions
		SET amount = $2, currency = $3, quantity = $4, description = $5, occurred_at = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, query,
		transaction.ID,
		transaction.Amount.Amount(),
		transaction.Amount.Currency().String(),
		transaction.Quantity,
		transaction.Description,
		transaction.OccurredAt,
		transaction.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "transaction")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError("transaction")
	}
	return transaction, nil
}

// Delete は取引を削除し、削除前の状態を返します
func (r *TransactionRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Transaction, error) {
	query := "DELETE FROM transactions WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}
	query += " RETURNING " + transactionColumns

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, r.HandleError(err, "transaction")
	}
	return transaction, nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var (
		t        entity.Transaction
		kind     string
		amount   int64
		currency string
	)
	if err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&t.AccountID,
		&t.AssetID,
		&kind,
		&amount,
		&currency,
		&t.Quantity,
		&t.Description,
		&t.OccurredAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	money, err := valueobject.NewMoney(amount, valueobject.Currency(currency))
	if err != nil {
		return nil, err
	}
	t.Kind = valueobject.TransactionKind(kind)
	t.Amount = money
	return &t, nil
}
