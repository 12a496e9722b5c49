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

const institutionColumns = "id, owner_id, name, institution_kind, country, created_at, updated_at"

// InstitutionRepository は金融機関リポジトリの実装です
type InstitutionRepository struct {
	*database.BaseRepository
}

// NewInstitutionRepository は新しいInstitutionRepositoryを作成します
func NewInstitutionRepository(txManager *database.TxManager) *InstitutionRepository {
	return &InstitutionRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

// FindByID はIDで金融機関を検索します
func (r *InstitutionRepository) FindByID(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Institution, error) {
	query := "SELECT " + institutionColumns + " FROM institutions WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	institution, err := scanInstitution(row)
	if err != nil {
		return nil, r.HandleError(err, "institution")
	}
	return institution, nil
}

// List は金融機関の一覧と総件数を返します
func (r *InstitutionRepository) List(ctx context.Context, scope repository.OwnerScope, offset, limit int) ([]*entity.Institution, int, error) {
	where := ""
	args := []any{}
	if ownerID, ok := scope.OwnerID(); ok {
		where = " WHERE owner_id = $1"
		args = append(args, ownerID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM institutions" + where
	if err := r.Querier(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, r.HandleError(err, "institution")
	}

	query := "SELECT " + institutionColumns + " FROM institutions" + where +
		" ORDER BY name ASC" +
		" OFFSET $" + placeholder(len(args)+1) + " LIMIT $" + placeholder(len(args)+2)
	args = append(args, offset, limit)

	rows, err := r.Querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, r.HandleError(err, "institution")
	}
	defer rows.Close()

	institutions := make([]*entity.Institution, 0)
	for rows.Next() {
		institution, err := scanInstitution(rows)
		if err != nil {
			return nil, 0, r.HandleError(err, "institution")
		}
		institutions = append(institutions, institution)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, r.HandleError(err, "institution")
	}

	return institutions, total, nil
}

// Create は金融機関を作成します
func (r *InstitutionRepository) Create(ctx context.Context, institution *entity.Institution) (*entity.Institution, error) {
	query := `
		INSERT INTO institutions (` + institutionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.Querier(ctx).Exec(ctx, query,
		institution.ID,
		institution.OwnerID,
		institution.Name,
		string(institution.Kind),
		institution.Country,
		institution.CreatedAt,
		institution.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "institution")
	}
	return institution, nil
}

// Update は金融機関を更新します
// 対象行が消えている場合はNotFoundを返す
func (r *InstitutionRepository) Update(ctx context.Context, institution *entity.Institution) (*entity.Institution, error) {
	query := `
		UPDATE institutions
		SET name = $2, institution_kind = $3, country = $4, updated_at = $5
		WHERE id = $1`

	tag, err := r.Querier(ctx).Exec(ctx, query,
		institution.ID,
		institution.Name,
		string(institution.Kind),
		institution.Country,
		institution.UpdatedAt,
	)
	if err != nil {
		return nil, r.HandleError(err, "institution")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewNotFoundError("institution")
	}
	return institution, nil
}

// Delete は金融機関を削除し、削除前の状態を返します
func (r *InstitutionRepository) Delete(ctx context.Context, id uuid.UUID, scope repository.OwnerScope) (*entity.Institution, error) {
	query := "DELETE FROM institutions WHERE id = $1"
	args := []any{id}
	if ownerID, ok := scope.OwnerID(); ok {
		query += " AND owner_id = $2"
		args = append(args, ownerID)
	}
	query += " RETURNING " + institutionColumns

	row := r.Querier(ctx).QueryRow(ctx, query, args...)
	institution, err := scanInstitution(row)
	if err != nil {
		return nil, r.HandleError(err, "institution")
	}
	return institution, nil
}

func scanInstitution(row pgx.Row) (*entity.Institution, error) {
	var (
		i    entity.Institution
		kind string
	)
	if err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&kind,
		&i.Country,
		&i.CreatedAt,
		&i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	i.Kind = valueobject.InstitutionKind(kind)
	return &i, nil
}
