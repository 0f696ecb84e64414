package domain

import "testing"

func TestRoleFromID(t *testing.T) {
	for _, want := range []Role{RoleManager, RoleEmployee, RoleAdmin} {
		got, ok := RoleFromID(int(want))
		if !ok || got != want {
			t.Errorf("RoleFromID(%d) = %v, %v", int(want), got, ok)
		}
	}
	for _, id := range []int{0, -1, 4, 99} {
		if _, ok := RoleFromID(id); ok {
			t.Errorf("RoleFromID(%d) resolved an unknown role", id)
		}
	}
}

func TestPrincipal_HasAnyRole(t *testing.T) {
	manager := Principal{UserID: 1, RoleID: int(RoleManager)}

	if !manager.HasAnyRole(RoleManager) {
		t.Fatalf("manager must match {Manager}")
	}
	if !manager.HasAnyRole(RoleEmployee, RoleManager) {
		t.Fatalf("manager must match a set containing Manager")
	}
	if manager.HasAnyRole(RoleEmployee) {
		t.Fatalf("manager must not match {Employee}")
	}
	if manager.HasAnyRole(RoleAdmin, RoleEmployee) {
		t.Fatalf("manager must not match {Admin, Employee}")
	}
}

func TestPrincipal_HasAnyRole_UnknownRoleDenies(t *testing.T) {
	unknown := Principal{UserID: 1, RoleID: 99}
	if unknown.HasAnyRole(RoleManager, RoleEmployee, RoleAdmin) {
		t.Fatalf("unresolvable role claim must deny")
	}
}

func TestPrincipal_HasAnyRole_EmptySetAllows(t *testing.T) {
	unknown := Principal{UserID: 1, RoleID: 99}
	if !unknown.HasAnyRole() {
		t.Fatalf("empty allowed set only requires authentication")
	}
}
