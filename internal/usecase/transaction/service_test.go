package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/domain/entity"
	"github.com/ChosunOne/treasury-sub000/internal/domain/repository"
	"github.com/ChosunOne/treasury-sub000/internal/domain/valueobject"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/transaction"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
	"github.com/ChosunOne/treasury-sub000/tests/testutil/mocks"
)

type factoryTestDeps struct {
	repo     *mocks.MockTransactionRepository
	tx       *mocks.MockTransactionManager
	resolver *mocks.MockPermissionResolver
	factory  *transaction.ServiceFactory
}

func newFactoryTestDeps(t *testing.T) *factoryTestDeps {
	t.Helper()
	d := &factoryTestDeps{
		repo:     mocks.NewMockTransactionRepository(t),
		tx:       mocks.NewMockTransactionManager(t),
		resolver: mocks.NewMockPermissionResolver(t),
	}
	d.factory = transaction.NewServiceFactory(d.repo, d.tx, d.resolver)
	return d
}

func memberNoDeleteSet() authz.PermissionSet {
	return authz.PermissionSet{
		Read:   authz.ReadOwn,
		Create: authz.CreateOwn,
		Update: authz.UpdateOwn,
		Delete: authz.DeleteNone,
	}
}

func newDeposit(t *testing.T, ownerID uuid.UUID) *entity.Transaction {
	t.Helper()
	amount, err := valueobject.NewMoney(125_00, valueobject.Currency("USD"))
	require.NoError(t, err)
	tx, err := entity.NewTransaction(
		ownerID, uuid.New(), nil,
		valueobject.TransactionKindDeposit, amount, 0,
		"salary", time.Now(),
	)
	require.NoError(t, err)
	return tx
}

// 自分名義の取引は作成できるが、削除レベルNoneでは同じ取引の削除が拒否される
func TestServiceFactory_OwnCreateSucceedsButDeleteDenied(t *testing.T) {
	ctx := context.Background()
	s1 := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	deps := newFactoryTestDeps(t)

	deps.resolver.On("Resolve", ctx, s1, authz.KindTransaction).Return(memberNoDeleteSet(), nil)

	deposit := newDeposit(t, s1.ID)
	deps.repo.On("Create", ctx, deposit).Return(deposit, nil)

	svc, err := deps.factory.ServiceFor(ctx, s1)
	require.NoError(t, err)

	created, err := svc.Create(ctx, deposit)
	require.NoError(t, err)
	assert.Equal(t, deposit.ID, created.ID)

	_, err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
}

// 同一の権限組を持つ別サブジェクトからは、他人の取引は不在と区別がつかない
func TestServiceFactory_ForeignTransactionReadsAsNotFound(t *testing.T) {
	ctx := context.Background()
	s1 := authz.NewSubject(uuid.New(), "s1@example.com", nil)
	s2 := authz.NewSubject(uuid.New(), "s2@example.com", nil)

	deposit := newDeposit(t, s1.ID)

	deps := newFactoryTestDeps(t)
	deps.resolver.On("Resolve", ctx, s2, authz.KindTransaction).Return(memberNoDeleteSet(), nil)
	// s2の所有者述語では s1 の行は0件
	deps.repo.On("FindByID", ctx, deposit.ID, repository.ScopeOwner(s2.ID)).
		Return(nil, apperror.NewNotFoundError("transaction"))

	svc, err := deps.factory.ServiceFor(ctx, s2)
	require.NoError(t, err)

	_, err = svc.Get(ctx, deposit.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.False(t, apperror.IsForbidden(err))
}

func TestServiceFactory_ResolverFailurePropagates(t *testing.T) {
	ctx := context.Background()
	s1 := authz.NewSubject(uuid.New(), "s1@example.com", nil)

	deps := newFactoryTestDeps(t)
	resolutionErr := &authz.PolicyResolutionError{
		Kind:   authz.KindTransaction,
		Action: authz.ActionRead,
		Err:    assert.AnError,
	}
	deps.resolver.On("Resolve", ctx, s1, authz.KindTransaction).
		Return(authz.PermissionSet{}, resolutionErr)

	_, err := deps.factory.ServiceFor(ctx, s1)
	require.Error(t, err)
	assert.True(t, authz.IsPolicyResolutionError(err))
}

func TestServiceFactory_PatchAmendsOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	s1 := authz.NewSubject(uuid.New(), "s1@example.com", nil)

	deposit := newDeposit(t, s1.ID)
	originalAmount := deposit.Amount
	newDescription := "salary (corrected)"

	deps := newFactoryTestDeps(t)
	deps.resolver.On("Resolve", ctx, s1, authz.KindTransaction).Return(memberNoDeleteSet(), nil)
	scope := repository.ScopeOwner(s1.ID)
	deps.repo.On("FindByID", ctx, deposit.ID, scope).Return(deposit, nil)
	deps.repo.On("Update", ctx, deposit).Return(deposit, nil)

	svc, err := deps.factory.ServiceFor(ctx, s1)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, deposit.ID, transaction.Patch{Description: &newDescription})
	require.NoError(t, err)
	assert.Equal(t, newDescription, updated.Description)
	assert.Equal(t, originalAmount, updated.Amount)
}
