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

const userColumns = "id, email, name, password_hash, status, created_at, updated_at"

// UserRepository はユーザーリポジトリの実装です
// ユーザーは自分自身を所有するため、所有者述語は id 列にマージされる
type UserRepository struct {
	*database.BaseRepository
}

// NewUserRepository は新しいUserRepositoryを作成します
func NewUserRepository(txManager *database.TxManager) *UserRepository {
	return &UserRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// FindByID はIDでユーザーを検索します
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND id = $2"
		args = append(args, ownerID)
	}

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	user, err := scanUser(row)
	if err != nil {
		return nil, r.HandleError(err, "user")
	}
	return user, nil
}

// List はユーザーの一覧と総件数を返します
func (r *UserRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.User, int, error) {
	where := ""
	args := []any{}
	if ownerID, ok := scope.OwnerID(); ok {
		where = " WHERE id = $1"
		args = append(args, ownerID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM users" + where
	if err := r.Querier(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, r.HandleError(err, "user")
	}

	query := "SELECT " + userColumns + " FROM users" + where +
		" ORDER BY created_at DESC" +
		" OFFSET $" + placeholder(len(args)+1) + " LIMIT $" + placeholder(len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.HandleError(err, "user")
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, r.HandleError(err, "user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.HandleError(err, "user")
	}

	return users, total, nil
}

// Create はユーザーを作成します
func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.Querier(ctx).Exec(ctx, query,
		user.ID,
		user.Email.String(),
		user.Name,
		user.Password.Hash(),
		string(user.Status),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "user")
	}
	return user, nil
}

// Update はユーザーを更新します
// 対象行が消えている場合はNotFoundを返す
func (r *UserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		UPDATE users
		SET name = $2, password_hash = $3, status = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, query,
		user.ID,
		user.Name,
		user.Password.Hash(),
		string(user.Status),
		user.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "user")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError("user")
	}
	return user, nil
}

// Delete はユーザーを削除し、削除前の状態を返します
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.User, error) {
	query := "DELETE FROM users WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND id = $2"
		args = append(args, ownerID)
	}
	query += " RETURNING " + userColumns

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	user, err := scanUser(row)
	if err != nil {
		return nil, r.HandleError(err, "user")
	}
	return user, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u            entity.User
		email        string
		passwordHash string
		status       string
	)
	if err := row.Scan(
		&u.ID,
		&email,
		&u.Name,
		&passwordHash,
		&status,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	u.Email = emailVO
	u.Password = valueobject.PasswordFromHash(passwordHash)
	u.Status = entity.UserStatus(status)
	return &u, nil
}
