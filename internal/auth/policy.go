// Package auth holds the authorization predicates gating catalog moderation.
package auth

import (
	"gotham/internal/models/db_models"
)

func IsAdmin(user *db_models.User) bool {
	return user.IsAdmin()
}

// CanEditAttraction: admins, or the user who submitted the attraction.
func CanEditAttraction(user *db_models.User, attraction *db_models.Attraction) bool {
	if user == nil || attraction == nil {
		return false
	}
	return user.IsAdmin() || attraction.CreatedBy == user.ID
}

// CanDelete: admins may delete in any state; a creator only while the
// attraction is still pending. Approval locks it out of the creator's hands.
func CanDelete(user *db_models.User, attraction *db_models.Attraction) bool {
	if user == nil || attraction == nil {
		return false
	}
	if user.IsAdmin() {
		return true
	}
	return attraction.CreatedBy == user.ID && attraction.Status == db_models.AttractionStatusPending
}

func CanApprove(user *db_models.User) bool {
	return user.IsAdmin()
}
