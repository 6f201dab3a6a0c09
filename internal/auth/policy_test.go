package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gotham/internal/models/db_models"
)

func testUser(role string) *db_models.User {
	u := &db_models.User{Role: role}
	u.ID = uuid.New()
	return u
}

func testAttraction(creator uuid.UUID, status string) *db_models.Attraction {
	a := &db_models.Attraction{Status: status, CreatedBy: creator}
	a.ID = uuid.New()
	return a
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(testUser(db_models.RoleAdmin)))
	assert.False(t, IsAdmin(testUser(db_models.RoleUser)))
	assert.False(t, IsAdmin(nil))
}

func TestCanEditAttraction(t *testing.T) {
	creator := testUser(db_models.RoleUser)
	stranger := testUser(db_models.RoleUser)
	admin := testUser(db_models.RoleAdmin)
	attraction := testAttraction(creator.ID, db_models.AttractionStatusPending)

	assert.True(t, CanEditAttraction(creator, attraction))
	assert.True(t, CanEditAttraction(admin, attraction))
	assert.False(t, CanEditAttraction(stranger, attraction))
	assert.False(t, CanEditAttraction(nil, attraction))
	assert.False(t, CanEditAttraction(creator, nil))
}

func TestCanDelete(t *testing.T) {
	creator := testUser(db_models.RoleUser)
	stranger := testUser(db_models.RoleUser)
	admin := testUser(db_models.RoleAdmin)

	cases := []struct {
		name   string
		user   *db_models.User
		status string
		want   bool
	}{
		{"creator pending", creator, db_models.AttractionStatusPending, true},
		{"creator approved", creator, db_models.AttractionStatusApproved, false},
		{"stranger pending", stranger, db_models.AttractionStatusPending, false},
		{"stranger approved", stranger, db_models.AttractionStatusApproved, false},
		{"admin pending", admin, db_models.AttractionStatusPending, true},
		{"admin approved", admin, db_models.AttractionStatusApproved, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			attraction := testAttraction(creator.ID, tc.status)
			assert.Equal(t, tc.want, CanDelete(tc.user, attraction))
		})
	}
}

// Approval revokes the creator's delete right while leaving the admin's intact.
func TestApprovalLocksCreatorOut(t *testing.T) {
	creator := testUser(db_models.RoleUser)
	admin := testUser(db_models.RoleAdmin)
	attraction := testAttraction(creator.ID, db_models.AttractionStatusPending)

	assert.True(t, CanDelete(creator, attraction))

	attraction.Status = db_models.AttractionStatusApproved

	assert.False(t, CanDelete(creator, attraction))
	assert.True(t, CanDelete(admin, attraction))
	assert.True(t, CanEditAttraction(creator, attraction))
}

func TestCanApprove(t *testing.T) {
	assert.True(t, CanApprove(testUser(db_models.RoleAdmin)))
	assert.False(t, CanApprove(testUser(db_models.RoleUser)))
	assert.False(t, CanApprove(nil))
}
