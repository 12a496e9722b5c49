package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
)

// Patch は口座の部分更新ペイロードを定義します
// nilのフィールドは変更されない
type Patch struct {
	Name          *string
	Type          *valueobject.AccountType
	InstitutionID *uuid.UUID
}

// Service は権限束縛済みの口座サービスです
type Service = resource.Service[*entity.Account, Patch]

// ServiceFactory はリクエストごとに権限を解決し、口座サービスを構築します
type ServiceFactory struct {
	repo     repository.AccountRepository
	tx       repository.TransactionManager
	resolver authz.PermissionResolver
}

// NewServiceFactory は新しいServiceFactoryを作成します
func NewServiceFactory(
	repo repository.AccountRepository,
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
	perms, err := f.resolver.Resolve(ctx, caller, authz.KindAccount)
	if err != nil {
		return nil, err
	}
	return resource.BuildService(ctx, f.definition(), caller, perms), nil
}

func (f *ServiceFactory) definition() resource.Definition[*entity.Account, Patch] {
	return resource.Definition[*entity.Account, Patch]{
		Kind:    authz.KindAccount,
		Store:   f.repo,
		Tx:      f.tx,
		OwnerOf: func(a *entity.Account) uuid.UUID { return a.OwnerID },
		Merge:   applyPatch,
	}
}

func applyPatch(a *entity.Account, p Patch) *entity.Account {
	if p.Name != nil {
		a.Rename(*p.Name)
	}
	if p.Type != nil {
		a.ChangeType(*p.Type)
	}
	if p.InstitutionID != nil {
		a.MoveToInstitution(*p.InstitutionID)
	}
	return a
}
