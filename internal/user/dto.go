package user

import (
	"errors"

	"github.com/plantworks/facilityops/pkg/validator"
)

// CreateUserDTO is the payload for registering a staff account. Password
// is optional; new accounts fall back to the plant's initial password.
type CreateUserDTO struct {
	Name           string       `json:"name" validate:"required,min=1,max=100"`
	Role           Role         `json:"role" validate:"required,oneof=ADMIN SUPERVISOR TECHNICIAN WORKER"`
	Email          string       `json:"email" validate:"required,email"`
	Password       string       `json:"password,omitempty"`
	Permissions    []Permission `json:"permissions"`
	Department     string       `json:"department,omitempty"`
	JobTitle       string       `json:"jobTitle,omitempty"`
	WorkerCategory string       `json:"workerCategory,omitempty"`
}

func (dto CreateUserDTO) Validate() error {
	if errs := validator.ValidateStruct(dto); len(errs) > 0 {
		return errors.New("invalid user payload: " + errs[0].FailedField + " failed " + errs[0].Tag)
	}
	return nil
}

// ChangePasswordDTO carries a self-service password change.
type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=3"`
}

func (dto ChangePasswordDTO) Validate() error {
	if errs := validator.ValidateStruct(dto); len(errs) > 0 {
		return errors.New("invalid password payload: " + errs[0].FailedField + " failed " + errs[0].Tag)
	}
	return nil
}
