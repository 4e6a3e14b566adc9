package users

import (
	"fmt"
	"strings"

	"github.com/Mystogan321/useradmin/internal/common"
)

// ValidateInput checks the caller-supplied fields of a create or update
// request. requirePassword is true on create; updates may leave the
// credential unchanged by sending it empty.
//
// Every failure wraps common.ErrValidation so callers can match the whole
// class with errors.Is.
func ValidateInput(in Input, requirePassword bool) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if !validRole(in.Role) {
		return fmt.Errorf("%w: unknown role %q", common.ErrValidation, in.Role)
	}
	if !validStatus(in.Status) {
		return fmt.Errorf("%w: unknown status %q", common.ErrValidation, in.Status)
	}
	if in.Gender != "" && !validGender(in.Gender) {
		return fmt.Errorf("%w: unknown gender %q", common.ErrValidation, in.Gender)
	}
	if requirePassword && in.Password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	at := strings.Index(email, "@")
	dot := strings.LastIndex(email, ".")
	if at < 1 || dot < at+2 || dot == len(email)-1 {
		return fmt.Errorf("%w: malformed email %q", common.ErrValidation, email)
	}
	return nil
}

func validRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleSubAdmin, RoleCustomer:
		return true
	}
	return false
}

func validGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func validStatus(s Status) bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}
