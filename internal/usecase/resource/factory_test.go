package resource_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChosunOne/treasury-sub000/internal/domain/authz"
	"github.com/ChosunOne/treasury-sub000/internal/usecase/resource"
	"github.com/ChosunOne/treasury-sub000/pkg/apperror"
)

func allPermissionSets() []authz.PermissionSet {
	reads := []authz.ReadLevel{authz.ReadNone, authz.ReadOwn, authz.ReadAll}
	creates := []authz.CreateLevel{authz.CreateNone, authz.CreateOwn, authz.CreateAll}
	updates := []authz.UpdateLevel{authz.UpdateNone, authz.UpdateOwn, authz.UpdateAll}
	deletes := []authz.DeleteLevel{authz.DeleteNone, authz.DeleteOwn, authz.DeleteAll}

	sets := make([]authz.PermissionSet, 0, 81)
	for _, r := range reads {
		for _, c := range creates {
			for _, u := range updates {
				for _, d := range deletes {
					sets = append(sets, authz.PermissionSet{Read: r, Create: c, Update: u, Delete: d})
				}
			}
		}
	}
	return sets
}

func TestBuildService_CuratedTuples_KeepResolvedPermissions(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)

	curated := 0
	for _, perms := range allPermissionSets() {
		if !resource.IsCurated(perms) {
			continue
		}
		curated++

		deps := newEngineTestDeps(t)
		svc := resource.BuildService(ctx, deps.definition(), caller, perms)
		assert.Equal(t, perms, svc.Permissions(), "curated tuple %s must bind as is", perms)
		assert.Equal(t, authz.KindAccount, svc.Kind())
	}
	// キュレート表の網羅性が変わったらこのテストが最初に気づく
	assert.Equal(t, 11, curated)
}

func TestBuildService_AllTuples_NonCuratedFallBackToRestricted(t *testing.T) {
	ctx := context.Background()
	caller := authz.NewSubject(uuid.New(), "s1@example.com", nil)

	for _, perms := range allPermissionSets() {
		if resource.IsCurated(perms) {
			continue
		}

		deps := newEngineTestDeps(t)
		svc := resource.BuildService(ctx, deps.definition(), caller, perms)

		require.True(t, svc.Permissions().IsRestricted(),
			"non-curated tuple %s must fall back to the restricted set", perms)

		// フォールバック後は全操作が拒否され、ストアへの到達は無い
		_, err := svc.Get(ctx, uuid.New())
		assert.True(t, apperror.IsForbidden(err))
		_, _, err = svc.GetList(ctx, 0, 10)
		assert.True(t, apperror.IsForbidden(err))
		_, err = svc.Create(ctx, newAccountEntity(caller.ID))
		assert.True(t, apperror.IsForbidden(err))
		_, err = svc.Update(ctx, uuid.New(), accountPatch{})
		assert.True(t, apperror.IsForbidden(err))
		_, err = svc.Delete(ctx, uuid.New())
		assert.True(t, apperror.IsForbidden(err))
	}
}

func TestBuildService_RestrictedTupleItself_IsCurated(t *testing.T) {
	// 全面拒否の組自体はキュレート済みであること（フォールバック先が常に有効）
	assert.True(t, resource.IsCurated(authz.RestrictedPermissionSet()))
}
