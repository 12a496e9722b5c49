package authz_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauthz "github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/authz"
)

const testModel = `[request_definition]
r = sub, obj, act, scope

[policy_definition]
p = sub, obj, act, scope

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act && r.scope == p.scope
`

const testPolicy = `p, admin, account, read, all
p, admin, account, create, all
p, admin, account, update, all
p, admin, account, delete, all
p, member, account, read, own
p, member, account, create, own
p, member, account, update, own
p, auditor, account, read, all
g, senior_member, member
`

func newTestOracle(t *testing.T) *authz.CasbinOracle {
	t.Helper()
	dir := t.TempDir()

	modelPath := filepath.Join(dir, "model.conf")
	require.NoError(t, os.WriteFile(modelPath, []byte(testModel), 0o600))
	policyPath := filepath.Join(dir, "policy.csv")
	require.NoError(t, os.WriteFile(policyPath, []byte(testPolicy), 0o600))

	oracle, err := authz.NewCasbinOracle(modelPath, policyPath)
	require.NoError(t, err)
	return oracle
}

func TestCasbinOracle_Evaluate_AllScopeRole(t *testing.T) {
	ctx := context.Background()
	oracle := newTestOracle(t)
	admin := domainauthz.NewSubject(uuid.New(), "admin@example.com", []string{"admin"})

	for _, action := range domainauthz.AllActions() {
		decision, err := oracle.Evaluate(ctx, admin, domainauthz.KindAccount, action)
		require.NoError(t, err)
		assert.Equal(t, domainauthz.DecisionAll, decision, "action %s", action)
	}
}

func TestCasbinOracle_Evaluate_OwnScopeRole(t *testing.T) {
	ctx := context.Background()
	oracle := newTestOracle(t)
	member := domainauthz.NewSubject(uuid.New(), "member@example.com", []string{"member"})

	decision, err := oracle.Evaluate(ctx, member, domainauthz.KindAccount, domainauthz.ActionRead)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.DecisionOwn, decision)

	// ポリシー行のないアクションは拒否
	decision, err = oracle.Evaluate(ctx, member, domainauthz.KindAccount, domainauthz.ActionDelete)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.DecisionDenied, decision)
}

func TestCasbinOracle_Evaluate_RoleInheritance(t *testing.T) {
	ctx := context.Background()
	oracle := newTestOracle(t)
	senior := domainauthz.NewSubject(uuid.New(), "senior@example.com", []string{"senior_member"})

	decision, err := oracle.Evaluate(ctx, senior, domainauthz.KindAccount, domainauthz.ActionUpdate)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.DecisionOwn, decision)
}

func TestCasbinOracle_Evaluate_AllScopeWinsOverOwn(t *testing.T) {
	ctx := context.Background()
	oracle := newTestOracle(t)
	// member(own) と auditor(all) を併せ持つ場合、読み取りはAll
	subject := domainauthz.NewSubject(uuid.New(), "dual@example.com", []string{"member", "auditor"})

	decision, err := oracle.Evaluate(ctx, subject, domainauthz.KindAccount, domainauthz.ActionRead)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.DecisionAll, decision)
}

func TestCasbinOracle_Evaluate_NoRolesDenied(t *testing.T) {
	ctx := context.Background()
	oracle := newTestOracle(t)
	anonymous := domainauthz.NewSubject(uuid.New(), "nobody@example.com", nil)

	decision, err := oracle.Evaluate(ctx, anonymous, domainauthz.KindAccount, domainauthz.ActionRead)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.DecisionDenied, decision)
}

func TestCasbinOracle_Evaluate_UnknownResourceKindDenied(t *testing.T) {
	ctx := context.Background()
	oracle := newTestOracle(t)
	member := domainauthz.NewSubject(uuid.New(), "member@example.com", []string{"member"})

	decision, err := oracle.Evaluate(ctx, member, domainauthz.KindInstitution, domainauthz.ActionRead)
	require.NoError(t, err)
	assert.Equal(t, domainauthz.DecisionDenied, decision)
}
