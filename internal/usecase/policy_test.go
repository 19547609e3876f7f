package usecase

import (
	"testing"

	"github.com/mvoronin/userhub/internal/domain/model"
)

func TestPolicyDecisionTable(t *testing.T) {
	admin := model.Identity{UserID: 1, Role: model.RoleAdmin}
	common := model.Identity{UserID: 2, Role: model.RoleCommon}

	if !CanListUsers(admin) || CanListUsers(common) {
		t.Fatal("list: admin only")
	}

	if !CanViewUser(admin, 99) {
		t.Fatal("view: admin may view anyone")
	}
	if !CanViewUser(common, 2) {
		t.Fatal("view: common may view own record")
	}
	if CanViewUser(common, 3) {
		t.Fatal("view: common must not view foreign record")
	}

	if !CanUpdateUser(admin, 99) {
		t.Fatal("update: admin may update anyone")
	}
	if !CanUpdateUser(common, 2) {
		t.Fatal("update: common may update own record")
	}
	if CanUpdateUser(common, 3) {
		t.Fatal("update: common must not update foreign record")
	}

	if !CanChangeRole(admin) || CanChangeRole(common) {
		t.Fatal("role change: admin only")
	}

	if !CanDeleteUser(admin) || CanDeleteUser(common) {
		t.Fatal("delete: admin only")
	}
}
