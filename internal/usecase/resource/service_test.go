package resource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/tests/testutil/mocks"
)

// accountPatch is the partial update payload used to exercise the generic engine
type accountPatch struct {
	Name *string
	Type *valueobject.AccountType
}

type engineTestDeps struct {
	repo *mocks.MockAccountRepository
	tx   *mocks.MockTransactionManager
}

func newEngineTestDeps(t *testing.T) *engineTestDeps {
	t.Helper()
	return &engineTestDeps{
		repo: mocks.NewMockAccountRepository(t),
		tx:   mocks.NewMockTransactionManager(t),
	}
}

func (d *engineTestDeps) definition() resource.Definition[*entity.Account, accountPatch] {
	return resource.Definition[*entity.Account, accountPatch]{
		Kind:    authz.KindAccount,
		Store:   d.repo,
		Tx:      d.tx,
		OwnerOf: func(a *entity.Account) uuid.UUID { return a.OwnerID },
		Merge: func(a *entity.Account, p accountPatch) *entity.Account {
			if p.Name != nil {
				a.Rename(*p.Name)
			}
			if p.Type != nil {
				a.ChangeType(*p.Type)
			}
			return a
		},
	}
}

func newAccountEntity(ownerID uuid.UUID) *entity.Account {
	return entity.NewAccount(
		ownerID, uuid.New(), "Checking",
		valueobject.AccountTypeChecking, valueobject.Currency("USD"),
	)
}

func permSet(r authz.ReadLevel, c authz.CreateLevel, u authz.UpdateLevel, d authz.DeleteLevel) authz.PermissionSet {
	return authz.PermissionSet{Read: r, Create: c, Update: u, Delete: d}
}

func TestService_Get_NoneLevel_ForbiddenWithoutDataAccess(t *testing.T) {
	ctx := context.Background()
	deps := newEngineTestDeps(t)
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)

	// 読み取りNoneのキュレート済み組（ブロック済み）
	svc := resource.BuildService(ctx, deps.definition(), caller, authz.RestrictedPermissionSet())

	_, err := svc.Get(ctx, uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))

	_, _, err = svc.GetList(ctx, 0, 20)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	// モックに期待が一つも無いため、ストア呼び出しがあればここで失敗する
}

func TestService_Get_OwnLevel_ForeignOwnerIndistinguishableFromAbsent(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	foreignID := uuid.New()
	absentID := uuid.New()

	deps := newEngineTestDeps(t)
	scope := repository.ScopeOwner(caller.ID)
	// 他人所有の行は所有者述語により0件となり、リポジトリはNotFoundを返す
	deps.repo.On("FindByID", ctx, foreignID, scope).Return(nil, apperror.NewNotFoundError("account"))
	deps.repo.On("FindByID", ctx, absentID, scope).Return(nil, apperror.NewNotFoundError("account"))

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	_, foreignErr := svc.Get(ctx, foreignID)
	_, absentErr := svc.Get(ctx, absentID)

	require.Error(t, foreignErr)
	require.Error(t, absentErr)
	// 所有者不一致と真の不在は外部シグナルとして完全に一致すること
	assert.Equal(t, absentErr, foreignErr)
	assert.True(t, apperror.IsNotFound(foreignErr))
}

func TestService_Get_AllLevel_CrossesOwners(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "auditor@example.com", nil)
	perms := permSet(authz.ReadAll, authz.CreateNone, authz.UpdateNone, authz.DeleteNone)

	foreign := newAccountEntity(uuid.New())

	deps := newEngineTestDeps(t)
	deps.repo.On("FindByID", ctx, foreign.ID, repository.ScopeAll()).Return(foreign, nil)

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	got, err := svc.Get(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, foreign, got)
}

func TestService_GetList_OwnLevel_AppliesOwnerPredicate(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	owned := []*entity.Account{newAccountEntity(caller.ID)}

	deps := newEngineTestDeps(t)
	deps.repo.On("List", ctx, repository.ScopeOwner(caller.ID), 0, 20).Return(owned, 1, nil)

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	list, total, err := svc.GetList(ctx, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, owned, list)
}

func TestService_Create_OwnLevel_OwnerMismatchForbidden(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	// 他人名義のペイロード
	payload := newAccountEntity(uuid.New())

	deps := newEngineTestDeps(t)
	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	_, err := svc.Create(ctx, payload)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	// ストアは一切呼ばれない
}

func TestService_Create_OwnLevel_MatchingOwnerSucceeds(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	payload := newAccountEntity(caller.ID)

	deps := newEngineTestDeps(t)
	deps.repo.On("Create", ctx, payload).Return(payload, nil)

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	created, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, payload, created)
}

func TestService_Create_AllLevel_TrustsPayloadOwner(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "admin@example.com", nil)
	perms := permSet(authz.ReadAll, authz.CreateAll, authz.UpdateAll, authz.DeleteAll)

	// 他人名義でもAllスコープではそのまま受け入れる
	payload := newAccountEntity(uuid.New())

	deps := newEngineTestDeps(t)
	deps.repo.On("Create", ctx, payload).Return(payload, nil)

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	created, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, payload, created)
}

func TestService_Update_PartialPayload_OnlyPresentFieldsChange(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	current := newAccountEntity(caller.ID)
	originalType := current.Type
	newName := "Renamed"

	deps := newEngineTestDeps(t)
	scope := repository.ScopeOwner(caller.ID)
	deps.repo.On("FindByID", ctx, current.ID, scope).Return(current, nil)
	deps.repo.On("Update", ctx, current).Return(current, nil)

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	updated, err := svc.Update(ctx, current.ID, accountPatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	// ペイロードに無いフィールドは変更されない
	assert.Equal(t, originalType, updated.Type)
}

func TestService_Update_RowVanishedBetweenFetchAndPersist_Conflict(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	current := newAccountEntity(caller.ID)
	newName := "Renamed"

	deps := newEngineTestDeps(t)
	scope := repository.ScopeOwner(caller.ID)
	deps.repo.On("FindByID", ctx, current.ID, scope).Return(current, nil)
	// 取得と永続化の間に並行削除され、更新対象行が消えた
	deps.repo.On("Update", ctx, current).Return(nil, apperror.NewNotFoundError("account"))

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	_, err := svc.Update(ctx, current.ID, accountPatch{Name: &newName})
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	assert.False(t, apperror.IsNotFound(err))
}

func TestService_Update_UsesUpdateLevelScopeNotReadLevel(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "support@example.com", nil)
	// 読み取りAll、更新Own: 更新の取得はOwnスコープで行われること
	perms := permSet(authz.ReadAll, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	foreignID := uuid.New()
	newName := "Renamed"

	deps := newEngineTestDeps(t)
	deps.repo.On("FindByID", ctx, foreignID, repository.ScopeOwner(caller.ID)).
		Return(nil, apperror.NewNotFoundError("account"))

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	_, err := svc.Update(ctx, foreignID, accountPatch{Name: &newName})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Delete_OwnLevel_ReturnsPriorState(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	current := newAccountEntity(caller.ID)

	deps := newEngineTestDeps(t)
	scope := repository.ScopeOwner(caller.ID)
	deps.repo.On("FindByID", ctx, current.ID, scope).Return(current, nil)
	deps.repo.On("Delete", ctx, current.ID, scope).Return(current, nil)

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	prior, err := svc.Delete(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, current, prior)
}

func TestService_Delete_RowVanishedAfterCheck_Conflict(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	current := newAccountEntity(caller.ID)

	deps := newEngineTestDeps(t)
	scope := repository.ScopeOwner(caller.ID)
	deps.repo.On("FindByID", ctx, current.ID, scope).Return(current, nil)
	deps.repo.On("Delete", ctx, current.ID, scope).Return(nil, apperror.NewNotFoundError("account"))

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	_, err := svc.Delete(ctx, current.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
}

func TestService_Get_StoreFailure_PassedThrough(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	storeErr := errors.New("connection reset")
	id := uuid.New()

	deps := newEngineTestDeps(t)
	deps.repo.On("FindByID", ctx, id, repository.ScopeOwner(caller.ID)).Return(nil, storeErr)

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	_, err := svc.Get(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestService_Get_Idempotent_SameResultTwice(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	perms := permSet(authz.ReadOwn, authz.CreateOwn, authz.UpdateOwn, authz.DeleteOwn)

	current := newAccountEntity(caller.ID)

	deps := newEngineTestDeps(t)
	deps.repo.On("FindByID", ctx, current.ID, repository.ScopeOwner(caller.ID)).Return(current, nil).Twice()

	svc := resource.BuildService(ctx, deps.definition(), caller, perms)

	first, err := svc.Get(ctx, current.ID)
	require.NoError(t, err)
	second, err := svc.Get(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
