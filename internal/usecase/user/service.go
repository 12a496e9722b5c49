package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
)

// Patch はユーザーの部分更新ペイロードを定義します
// nilのフィールドは変更されない
type Patch struct {
	Name   *string
	Status *entity.UserStatus
}

// Service は権限束縛済みのユーザーサービスです
// ユーザー作成は外部のアイデンティティ基盤の責務であり、作成レベルは
// リソース種別のエンベロープにより常にNoneへ制限される
type Service = resource.Service[*entity.User, Patch]

// ServiceFactory はリクエストごとに権限を解決し、ユーザーサービスを構築します
type ServiceFactory struct {
	repo     repository.UserRepository
	tx       repository.TransactionManager
	resolver authz.PermissionResolver
}

// NewServiceFactory は新しいServiceFactoryを作成します
func NewServiceFactory(
	repo repository.UserRepository,
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
	perms, err := f.resolver.Resolve(ctx, caller, authz.KindUser)
	if err != nil {
		return nil, err
	}
	return resource.BuildService(ctx, f.definition(), caller, perms), nil
}

func (f *ServiceFactory) definition() resource.Definition[*entity.User, Patch] {
	return resource.Definition[*entity.User, Patch]{
		Kind:  authz.KindUser,
		Store: f.repo,
		Tx:    f.tx,
		// ユーザーは自分自身を所有する
		OwnerOf: func(u *entity.User) uuid.UUID { return u.ID },
		Merge:   applyPatch,
	}
}

func applyPatch(u *entity.User, p Patch) *entity.User {
	if p.Name != nil {
		u.Rename(*p.Name)
	}
	if p.Status != nil {
		u.ChangeStatus(*p.Status)
	}
	return u
}
