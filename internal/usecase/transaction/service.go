package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
)

// Patch は取引の部分更新ペイロードを定義します
// nilのフィールドは変更されない
type Patch struct {
	Amount      *valueobject.Money
	Quantity    *int64
	Description *string
	OccurredAt  *time.Time
}

// Service は権限束縛済みの取引サービスです
type Service = resource.Service[*entity.Transaction, Patch]

// ServiceFactory はリクエストごとに権限を解決し、取引サービスを構築します
type ServiceFactory struct {
	repo     repository.TransactionRepository
	tx       repository.TransactionManager
	resolver authz.PermissionResolver
}

// NewServiceFactory は新しいServiceFactoryを作成します
func NewServiceFactory(
	repo repository.TransactionRepository,
	tx repository.TransactionManager,
	resolver authz.PermissionResolver,
) *ServiceFactory {
	return &ServiceFactory{
		repo:     repo,
		tx:       tx,
		resolver: resolver,
	}
}

// ServiceFor は呼び出しサブジェクトの解決済み権限に束縛されたサービスを返します
func (f *ServiceFactory) ServiceFor(ctx context.Context, caller authz.Subject) (*Service, error) {
	perms, err := f.resolver.Resolve(ctx, caller, authz.KindTransaction)
	if err != nil {
		return nil, err
	}
	return resource.BuildService(ctx, f.definition(), caller, perms), nil
}

func (f *ServiceFactory) definition() resource.Definition[*entity.Transaction, Patch] {
	return resource.Definition[*entity.Transaction, Patch]{
		Kind:    authz.KindTransaction,
		Store:   f.repo,
		Tx:      f.tx,
		OwnerOf: func(t *entity.Transaction) uuid.UUID { return t.OwnerID },
		Merge:   applyPatch,
	}
}

func applyPatch(t *entity.Transaction, p Patch) *entity.Transaction {
	amount := t.Amount
	quantity := t.Quantity
	description := t.Description
	occurredAt := t.OccurredAt
	if p.Amount != nil {
		amount = *p.Amount
	}
	if p.Quantity != nil {
		quantity = *p.Quantity
	}
	if p.Description != nil {
		description = *p.Description
	}
	if p.OccurredAt != nil {
		occurredAt = *p.OccurredAt
	}
	t.Amend(amount, quantity, description, occurredAt)
	return t
}
