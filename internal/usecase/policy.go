package usecase

import "github.com/mvoronin/userhub/internal/domain/model"

// The role/ownership decision table for the user CRUD surface.
// Admins own the whole surface; common users are limited to their own
// record and may never change their own role. Registration and login are
// open by construction and never reach these checks.

// CanListUsers reports whether the actor may list all users.
func CanListUsers(actor model.Identity) bool {
	return actor.IsAdmin()
}

// CanViewUser reports whether the actor may fetch the target record.
func CanViewUser(actor model.Identity, targetID int64) bool {
	return actor.IsAdmin() || actor.UserID == targetID
}

// CanUpdateUser reports whether the actor may modify the target record.
func CanUpdateUser(actor model.Identity, targetID int64) bool {
	return actor.IsAdmin() || actor.UserID == targetID
}

// CanChangeRole reports whether the actor may assign a role different
// from the target's current one.
func CanChangeRole(actor model.Identity) bool {
	return actor.IsAdmin()
}

// CanDeleteUser reports whether the actor may delete user records.
func CanDeleteUser(actor model.Identity) bool {
	return actor.IsAdmin()
}
