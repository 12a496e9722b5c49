package authz

import "testing"

func TestNewPermissionSet_ValidLevels_ReturnsSet(t *testing.T) {
	ps, err := NewPermissionSet(ReadAll, CreateOwn, UpdateOwn, DeleteNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.Read != ReadAll || ps.Create != CreateOwn || ps.Update != UpdateOwn || ps.Delete != DeleteNone {
		t.Errorf("unexpected permission set: %s", ps)
	}
}

func TestNewPermissionSet_InvalidLevel_ReturnsError(t *testing.T) {
	_, err := NewPermissionSet(ReadLevel("super"), CreateOwn, UpdateOwn, DeleteNone)
	if err == nil {
		t.Error("invalid read level should be rejected")
	}
}

func TestRestrictedPermissionSet_AllActionsNone(t *testing.T) {
	ps := RestrictedPermissionSet()
	if ps.Read != ReadNone || ps.Create != CreateNone || ps.Update != UpdateNone || ps.Delete != DeleteNone {
		t.Errorf("restricted set should be all none, got %s", ps)
	}
	if !ps.IsRestricted() {
		t.Error("IsRestricted should be true for the restricted set")
	}
}

func TestPermissionSet_IsRestricted_NonRestrictedSet(t *testing.T) {
	ps := PermissionSet{Read: ReadOwn, Create: CreateNone, Update: UpdateNone, Delete: DeleteNone}
	if ps.IsRestricted() {
		t.Error("set with read=own should not be restricted")
	}
}

func TestPermissionSet_Comparable_UsableAsMapKey(t *testing.T) {
	table := map[PermissionSet]string{
		{Read: ReadAll, Create: CreateAll, Update: UpdateAll, Delete: DeleteAll}: "admin",
	}
	key := PermissionSet{Read: ReadAll, Create: CreateAll, Update: UpdateAll, Delete: DeleteAll}
	if table[key] != "admin" {
		t.Error("identical tuples should hit the same map entry")
	}
}
