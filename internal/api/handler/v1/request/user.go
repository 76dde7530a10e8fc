package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/skyblocklegends/api/internal/domain"
)

// Lookahead needs regexp2; the stdlib engine cannot compile this pattern.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordRegex = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

func validatePassword(password string) error {
	ok, err := passwordRegex.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (req *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 30)),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In(domain.RoleAdmin, domain.RoleModerator, domain.RolePlayer)),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (req *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Length(3, 30)),
		validation.Field(&req.Role, validation.In(domain.RoleAdmin, domain.RoleModerator, domain.RolePlayer)),
	)
	if err != nil {
		return err
	}

	if req.Password != nil {
		return validatePassword(*req.Password)
	}

	return nil
}

// Apply copies the supplied fields onto the user. The password is handled
// separately so the service can re-hash it.
func (req *UpdateUserRequest) Apply(user *domain.User) {
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
}

// NewPassword returns the plaintext password to set, or "" to keep the
// current one.
func (req *UpdateUserRequest) NewPassword() string {
	if req.Password == nil {
		return ""
	}

	return *req.Password
}
