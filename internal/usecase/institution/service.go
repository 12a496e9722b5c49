package institution

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
)

// Patch は金融機関の部分更新ペイロードを定義します
// nilのフィールドは変更されない
type Patch struct {
	Name    *string
	Kind    *valueobject.InstitutionKind
	Country *string
}

// Service は権限束縛済みの金融機関サービスです
type Service = resource.Service[*entity.Institution, Patch]

// ServiceFactory はリクエストごとに権限を解決し、金融機関サービスを構築します
type ServiceFactory struct {
	repo     repository.InstitutionRepository
	tx       repository.TransactionManager
	resolver authz.PermissionResolver
}

// NewServiceFactory は新しいServiceFactoryを作成します
func NewServiceFactory(
	repo repository.InstitutionRepository,
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
	perms, err := f.resolver.Resolve(ctx, caller, authz.KindInstitution)
	if err != nil {
		return nil, err
	}
	return resource.BuildService(ctx, f.definition(), caller, perms), nil
}

func (f *ServiceFactory) definition() resource.Definition[*entity.Institution, Patch] {
	return resource.Definition[*entity.Institution, Patch]{
		Kind:    authz.KindInstitution,
		Store:   f.repo,
		Tx:      f.tx,
		OwnerOf: func(i *entity.Institution) uuid.UUID { return i.OwnerID },
		Merge:   applyPatch,
	}
}

func applyPatch(i *entity.Institution, p Patch) *entity.Institution {
	if p.Name != nil {
		i.Rename(*p.Name)
	}
	if p.Kind != nil {
		i.ChangeKind(*p.Kind)
	}
	if p.Country != nil {
		i.Relocate(*p.Country)
	}
	return i
}
