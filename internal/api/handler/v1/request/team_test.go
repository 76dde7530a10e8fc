package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyblocklegends/api/internal/domain"
)

func TestCreateTeamMemberRequest_Validate(t *testing.T) {
	valid := CreateTeamMemberRequest{
		Name: "Steve",
		Role: domain.TeamRoleBuilder,
	}

	t.Run("valid", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("every known role", func(t *testing.T) {
		for _, role := range []string{
			domain.TeamRoleFounder,
			domain.TeamRoleAdmin,
			domain.TeamRoleDeveloper,
			domain.TeamRoleBuilder,
			domain.TeamRoleModerator,
			domain.TeamRoleSupporter,
		} {
			req := valid
			req.Role = role
			assert.NoError(t, req.Validate(), role)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		req := valid
		req.Name = ""
		assert.Error(t, req.Validate())
	})

	t.Run("unknown role", func(t *testing.T) {
		req := valid
		req.Role = "intern"
		assert.Error(t, req.Validate())
	})

	t.Run("negative order", func(t *testing.T) {
		req := valid
		req.Order = -1
		assert.Error(t, req.Validate())
	})
}

func TestUpdateTeamMemberRequest_Apply(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }

	member := domain.TeamMember{
		ID:       4,
		Name:     "Steve",
		Role:     domain.TeamRoleBuilder,
		Order:    2,
		IsActive: true,
	}

	req := UpdateTeamMemberRequest{
		Role:  strPtr(domain.TeamRoleModerator),
		Order: intPtr(0),
	}
	assert.NoError(t, req.Validate())

	req.Apply(&member)

	assert.Equal(t, domain.TeamRoleModerator, member.Role)
	assert.Equal(t, 0, member.Order)
	assert.Equal(t, "Steve", member.Name, "omitted fields keep stored values")
	assert.True(t, member.IsActive)
}
