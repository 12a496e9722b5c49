package authz_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauthz "github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/infrastructure/authz"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
)

// 配布ポリシーの各ロールが各リソース種別で解決する権限組は、
// エンベロープでクランプされた後も必ずディスパッチテーブルに存在すること。
// テーブルから漏れた組は全面拒否へフォールバックするため、
// ポリシー・エンベロープ・テーブルのずれはここで検出する
func TestShippedPolicy_ResolvedTuples_AreCurated(t *testing.T) {
	oracle, err := authz.NewCasbinOracle(
		"../../../configs/policy_model.conf",
		"../../../configs/policy.csv",
	)
	require.NoError(t, err)
	resolver := authz.NewPermissionResolver(oracle)

	roles := []string{"admin", "operator", "auditor", "support", "member", "contributor", "viewer"}

	for _, role := range roles {
		subject := domainauthz.NewSubject(uuid.New(), role+"@example.com", []string{role})
		for _, kind := range domainauthz.AllResourceKinds() {
			perms, err := resolver.Resolve(context.Background(), subject, kind)
			require.NoError(t, err, "role=%s kind=%s", role, kind)

			assert.True(t, resource.IsCurated(perms),
				"role=%s kind=%s resolves to %s, which is not in the dispatch table", role, kind, perms)
		}
	}
}

// クランプが生む代表的なユーザー種別の組が、そのままの形で束縛されること
func TestShippedPolicy_UserKindTuples_BindWithoutFallback(t *testing.T) {
	oracle, err := authz.NewCasbinOracle(
		"../../../configs/policy_model.conf",
		"../../../configs/policy.csv",
	)
	require.NoError(t, err)
	resolver := authz.NewPermissionResolver(oracle)

	tests := []struct {
		role string
		want domainauthz.PermissionSet
	}{
		{
			role: "member",
			want: domainauthz.PermissionSet{
				Read:   domainauthz.ReadOwn,
				Create: domainauthz.CreateNone,
				Update: domainauthz.UpdateOwn,
				Delete: domainauthz.DeleteOwn,
			},
		},
		{
			role: "admin",
			want: domainauthz.PermissionSet{
				Read:   domainauthz.ReadAll,
				Create: domainauthz.CreateNone,
				Update: domainauthz.UpdateAll,
				Delete: domainauthz.DeleteOwn,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			subject := domainauthz.NewSubject(uuid.New(), tt.role+"@example.com", []string{tt.role})
			perms, err := resolver.Resolve(context.Background(), subject, domainauthz.KindUser)
			require.NoError(t, err)

			assert.Equal(t, tt.want, perms)
			assert.True(t, resource.IsCurated(perms))
		})
	}
}
