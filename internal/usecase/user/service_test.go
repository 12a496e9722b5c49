package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/user"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/tests/testutil/mocks"
)

type factoryTestDeps struct {
	repo     *mocks.MockUserRepository
	tx       *mocks.MockTransactionManager
	resolver *mocks.MockPermissionResolver
	factory  *user.ServiceFactory
}

func newFactoryTestDeps(t *testing.T) *factoryTestDeps {
	t.Helper()
	d := &factoryTestDeps{
		repo:     mocks.NewMockUserRepository(t),
		tx:       mocks.NewMockTransactionManager(t),
		resolver: mocks.NewMockPermissionResolver(t),
	}
	d.factory = user.NewServiceFactory(d.repo, d.tx, d.resolver)
	return d
}

func newTestUser(t *testing.T) *entity.User {
	t.Helper()
	email, err := valueobject.NewEmail("member@example.com")
	require.NoError(t, err)
	return entity.NewUser(email, "Member", valueobject.PasswordFromHash("$2a$12$hash"))
}

// ユーザーは自分自身を所有するため、Ownスコープでは本人のみ更新できる
func TestServiceFactory_OwnScope_SelfUpdateSucceeds(t *testing.T) {
	ctx := context.Background()
	u := newTestUser(t)
	caller := authz.NewSubject(u.ID, u.Email.String(), nil)
	perms := authz.PermissionSet{
		Read:   authz.ReadOwn,
		Create: authz.CreateNone,
		Update: authz.UpdateOwn,
		Delete: authz.DeleteOwn,
	}

	deps := newFactoryTestDeps(t)
	deps.resolver.On("Resolve", ctx, caller, authz.KindUser).Return(perms, nil)
	scope := repository.ScopeOwner(caller.ID)
	deps.repo.On("FindByID", ctx, u.ID, scope).Return(u, nil)
	deps.repo.On("Update", ctx, u).Return(u, nil)

	svc, err := deps.factory.ServiceFor(ctx, caller)
	require.NoError(t, err)

	newName := "Renamed Member"
	updated, err := svc.Update(ctx, u.ID, user.Patch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, entity.UserStatusActive, updated.Status)
}

// 本人以外のユーザーはOwnスコープでは不在として扱われる
func TestServiceFactory_OwnScope_OtherUserNotFound(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "member@example.com", nil)
	perms := authz.PermissionSet{
		Read:   authz.ReadOwn,
		Create: authz.CreateNone,
		Update: authz.UpdateNone,
		Delete: authz.DeleteNone,
	}

	otherID := uuid.New()

	deps := newFactoryTestDeps(t)
	deps.resolver.On("Resolve", ctx, caller, authz.KindUser).Return(perms, nil)
	deps.repo.On("FindByID", ctx, otherID, repository.ScopeOwner(caller.ID)).
		Return(nil, apperror.NewNotFoundError("user"))

	svc, err := deps.factory.ServiceFor(ctx, caller)
	require.NoError(t, err)

	_, err = svc.Get(ctx, otherID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestServiceFactory_StatusPatch_ChangesStatus(t *testing.T) {
	ctx := context.Background()
	u := newTestUser(t)
	caller := authz.NewSubject(u.ID, u.Email.String(), nil)
	perms := authz.PermissionSet{
		Read:   authz.ReadOwn,
		Create: authz.CreateNone,
		Update: authz.UpdateOwn,
		Delete: authz.DeleteOwn,
	}

	deps := newFactoryTestDeps(t)
	deps.resolver.On("Resolve", ctx, caller, authz.KindUser).Return(perms, nil)
	scope := repository.ScopeOwner(caller.ID)
	deps.repo.On("FindByID", ctx, u.ID, scope).Return(u, nil)
	deps.repo.On("Update", ctx, u).Return(u, nil)

	svc, err := deps.factory.ServiceFor(ctx, caller)
	require.NoError(t, err)

	deactivated := entity.UserStatusDeactivated
	updated, err := svc.Update(ctx, u.ID, user.Patch{Status: &deactivated})
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusDeactivated, updated.Status)
}
