package authz_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauthz "github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/authz"
	"github.com/ChosunOne/treasury-sub000/tests/testutil/mocks"
)

func expectEvaluations(oracle *mocks.MockPolicyOracle, ctx context.Context, subject domainauthz.Subject, kind domainauthz.ResourceKind, read, create, update, del domainauthz.Decision) {
	oracle.On("Evaluate", ctx, subject, kind, domainauthz.ActionRead).Return(read, nil)
	oracle.On("Evaluate", ctx, subject, kind, domainauthz.ActionCreate).Return(create, nil)
	oracle.On("Evaluate", ctx, subject, kind, domainauthz.ActionUpdate).Return(update, nil)
	oracle.On("Evaluate", ctx, subject, kind, domainauthz.ActionDelete).Return(del, nil)
}

func TestPermissionResolver_Resolve_MapsDecisionsToLevels(t *testing.T) {
	ctx := context.Background()
	subject := domainauthz.NewSubject(uuid.New(), "member@example.com", []string{"member"})

	oracle := mocks.NewMockPolicyOracle(t)
	expectEvaluations(oracle, ctx, subject, domainauthz.KindAccount,
		domainauthz.DecisionOwn, domainauthz.DecisionOwn, domainauthz.DecisionOwn, domainauthz.DecisionDenied)

	resolver := authz.NewPermissionResolver(oracle)

	perms, err := resolver.Resolve(ctx, subject, domainauthz.KindAccount)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.ReadOwn, perms.Read)
	assert.Equal(t, domainauthz.CreateOwn, perms.Create)
	assert.Equal(t, domainauthz.UpdateOwn, perms.Update)
	assert.Equal(t, domainauthz.DeleteNone, perms.Delete)
}

func TestPermissionResolver_Resolve_AbsentDecisionIsNone(t *testing.T) {
	ctx := context.Background()
	subject := domainauthz.NewSubject(uuid.New(), "nobody@example.com", nil)

	oracle := mocks.NewMockPolicyOracle(t)
	expectEvaluations(oracle, ctx, subject, domainauthz.KindAsset,
		domainauthz.DecisionDenied, domainauthz.DecisionDenied, domainauthz.DecisionDenied, domainauthz.DecisionDenied)

	resolver := authz.NewPermissionResolver(oracle)

	perms, err := resolver.Resolve(ctx, subject, domainauthz.KindAsset)
	require.NoError(t, err)
	assert.True(t, perms.IsRestricted())
}

// ユーザー種別のエンベロープにより、オラクルが広い判定を返しても
// 作成はNone、削除はOwnを超えない
func TestPermissionResolver_Resolve_ClampsToUserEnvelope(t *testing.T) {
	ctx := context.Background()
	subject := domainauthz.NewSubject(uuid.New(), "admin@example.com", []string{"admin"})

	oracle := mocks.NewMockPolicyOracle(t)
	expectEvaluations(oracle, ctx, subject, domainauthz.KindUser,
		domainauthz.DecisionAll, domainauthz.DecisionAll, domainauthz.DecisionAll, domainauthz.DecisionAll)

	resolver := authz.NewPermissionResolver(oracle)

	perms, err := resolver.Resolve(ctx, subject, domainauthz.KindUser)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.ReadAll, perms.Read)
	assert.Equal(t, domainauthz.CreateNone, perms.Create)
	assert.Equal(t, domainauthz.UpdateAll, perms.Update)
	assert.Equal(t, domainauthz.DeleteOwn, perms.Delete)
}

func TestPermissionResolver_Resolve_OracleFailureFailsClosed(t *testing.T) {
	ctx := context.Background()
	subject := domainauthz.NewSubject(uuid.New(), "member@example.com", []string{"member"})

	resolutionErr := domainauthz.NewPolicyResolutionError(
		domainauthz.KindAccount, domainauthz.ActionRead, assert.AnError)

	oracle := mocks.NewMockPolicyOracle(t)
	oracle.On("Evaluate", ctx, subject, domainauthz.KindAccount, domainauthz.ActionRead).
		Return(domainauthz.DecisionDenied, resolutionErr)

	resolver := authz.NewPermissionResolver(oracle)

	perms, err := resolver.Resolve(ctx, subject, domainauthz.KindAccount)
	require.Error(t, err)
	assert.True(t, domainauthz.IsPolicyResolutionError(err))
	// 失敗時のPermissionSetは空（ゼロ値）であること
	assert.Equal(t, domainauthz.PermissionSet{}, perms)
}
