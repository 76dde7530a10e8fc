package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyblocklegends/api/internal/domain"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateUserRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  CreateUserRequest{Username: "steve", Password: "hunter2hunter2", Role: domain.RolePlayer},
		},
		{
			name:    "username too short",
			req:     CreateUserRequest{Username: "ab", Password: "hunter2hunter2", Role: domain.RolePlayer},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     CreateUserRequest{Username: "steve", Role: domain.RolePlayer},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     CreateUserRequest{Username: "steve", Password: "abc1", Role: domain.RolePlayer},
			wantErr: true,
		},
		{
			name:    "password without digit",
			req:     CreateUserRequest{Username: "steve", Password: "onlyletters", Role: domain.RolePlayer},
			wantErr: true,
		},
		{
			name:    "password without letter",
			req:     CreateUserRequest{Username: "steve", Password: "1234567890", Role: domain.RolePlayer},
			wantErr: true,
		},
		{
			name:    "unknown role",
			req:     CreateUserRequest{Username: "steve", Password: "hunter2hunter2", Role: "owner"},
			wantErr: true,
		},
		{
			name:    "missing role",
			req:     CreateUserRequest{Username: "steve", Password: "hunter2hunter2"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdateUserRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("weak password rejected", func(t *testing.T) {
		req := UpdateUserRequest{Password: strPtr("short1")}
		assert.Error(t, req.Validate())
	})

	t.Run("strong password accepted", func(t *testing.T) {
		req := UpdateUserRequest{Password: strPtr("longenough1")}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdateUserRequest_Apply(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	user := domain.User{ID: 7, Username: "steve", Role: domain.RolePlayer}

	req := UpdateUserRequest{
		Role:     strPtr(domain.RoleModerator),
		Password: strPtr("newpassword1"),
	}
	req.Apply(&user)

	assert.Equal(t, uint(7), user.ID)
	assert.Equal(t, "steve", user.Username, "username stays when not supplied")
	assert.Equal(t, domain.RoleModerator, user.Role)
	assert.Equal(t, "newpassword1", req.NewPassword())
}

func TestUpdateUserRequest_NewPassword_Empty(t *testing.T) {
	req := UpdateUserRequest{}
	assert.Equal(t, "", req.NewPassword())
}
