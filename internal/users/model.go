// Package users defines the user record model shared by the backend and the
// panel. A User carries the stored credential; a PublicUser is the projection
// handed to everything outside the backend. The credential must never leave
// the backend through any read path.
package users

// Role of a user record.
type Role string

const (
	RoleAdmin    Role = "Administrator"
	RoleSubAdmin Role = "Sub Admin"
	RoleCustomer Role = "Customer"
)

// Gender of a user record. Optional.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Status of a user record.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// User is a full record as persisted, including the write-only credential.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	DOB      string `json:"dob,omitempty"`
	Gender   Gender `json:"gender,omitempty"`
	Status   Status `json:"status"`
	Password string `json:"password"`
}

// PublicUser is a User without the credential. This is the only shape that
// leaves the backend.
type PublicUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	DOB    string `json:"dob,omitempty"`
	Gender Gender `json:"gender,omitempty"`
	Status Status `json:"status"`
}

// Public strips the credential from a User.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		DOB:    u.DOB,
		Gender: u.Gender,
		Status: u.Status,
	}
}

// Input carries the caller-supplied fields of a create or update request.
// The identifier is never part of the input: it is generated on create and
// immutable on update.
type Input struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	DOB      string `json:"dob,omitempty"`
	Gender   Gender `json:"gender,omitempty"`
	Status   Status `json:"status"`
	Password string `json:"password,omitempty"`
}
