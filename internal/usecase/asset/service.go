package asset

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
)

// Patch は資産の部分更新ペイロードを定義します
// nilのフィールドは変更されない
type Patch struct {
	Name  *string
	Class *valueobject.AssetClass
}

// Service は権限束縛済みの資産サービスです
type Service = resource.Service[*entity.Asset, Patch]

// ServiceFactory はリクエストごとに権限を解決し、資産サービスを構築します
type ServiceFactory struct {
	repo     repository.AssetRepository
	tx       repository.TransactionManager
	resolver authz.PermissionResolver
}

// NewServiceFactory は新しいServiceFactoryを作成します
func NewServiceFactory(
	repo repository.AssetRepository,
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
	perms, err := f.resolver.Resolve(ctx, caller, authz.KindAsset)
	if err != nil {
		return nil, err
	}
	return resource.BuildService(ctx, f.definition(), caller, perms), nil
}

func (f *ServiceFactory) definition() resource.Definition[*entity.Asset, Patch] {
	return resource.Definition[*entity.Asset, Patch]{
		Kind:    authz.KindAsset,
		Store:   f.repo,
		Tx:      f.tx,
		OwnerOf: func(a *entity.Asset) uuid.UUID { return a.OwnerID },
		Merge:   applyPatch,
	}
}

func applyPatch(a *entity.Asset, p Patch) *entity.Asset {
	if p.Name != nil {
		a.Rename(*p.Name)
	}
	if p.Class != nil {
		a.Reclassify(*p.Class)
	}
	return a
}
