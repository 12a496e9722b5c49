package authz

import "testing"

func TestLevelEnvelope_Clamp_WithinEnvelope_Unchanged(t *testing.T) {
	env := OpenEnvelope()
	ps := PermissionSet{Read: ReadOwn, Create: CreateOwn, Update: UpdateOwn, Delete: DeleteNone}

	clamped := env.Clamp(ps)
	if clamped != ps {
		t.Errorf("open envelope should not change the set, got %s", clamped)
	}
}

func TestLevelEnvelope_Clamp_ExceedsEnvelope_ClampedDown(t *testing.T) {
	env := LevelEnvelope{Read: ReadAll, Create: CreateNone, Update: UpdateOwn, Delete: DeleteOwn}
	ps := PermissionSet{Read: ReadAll, Create: CreateAll, Update: UpdateAll, Delete: DeleteAll}

	clamped := env.Clamp(ps)
	if clamped.Read != ReadAll {
		t.Errorf("read within envelope should be kept, got %s", clamped.Read)
	}
	if clamped.Create != CreateNone {
		t.Errorf("create should be clamped to none, got %s", clamped.Create)
	}
	if clamped.Update != UpdateOwn {
		t.Errorf("update should be clamped to own, got %s", clamped.Update)
	}
	if clamped.Delete != DeleteOwn {
		t.Errorf("delete should be clamped to own, got %s", clamped.Delete)
	}
}

func TestLevelEnvelope_Clamp_NeverRaisesLevel(t *testing.T) {
	env := OpenEnvelope()
	ps := RestrictedPermissionSet()

	clamped := env.Clamp(ps)
	if !clamped.IsRestricted() {
		t.Errorf("clamp must never widen a level, got %s", clamped)
	}
}

func TestDefaultEnvelopes_UserKind_CreationClosed(t *testing.T) {
	env := DefaultEnvelopes()[KindUser]
	if env.Create != CreateNone {
		t.Errorf("user create envelope should be none, got %s", env.Create)
	}
	if env.Delete != DeleteOwn {
		t.Errorf("user delete envelope should be own, got %s", env.Delete)
	}
}

func TestDefaultEnvelopes_CoversAllKinds(t *testing.T) {
	envs := DefaultEnvelopes()
	for _, kind := range AllResourceKinds() {
		if _, ok := envs[kind]; !ok {
			t.Errorf("missing envelope for kind %s", kind)
		}
	}
}
