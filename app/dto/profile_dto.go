package dto

import "strings"

// EditProfileRequest carries the profile fields to change. Absent or empty fields are left untouched.
type EditProfileRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=255" example:"Ada"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=255" example:"King"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"ada.king@example.com"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6,max=72" example:"n3w-s3cret"`
}

// Normalize drops empty or whitespace-only fields so they are left untouched.
// A non-blank password is kept exactly as sent.
func (r *EditProfileRequest) Normalize() {
	blankToNil(&r.FirstName)
	blankToNil(&r.LastName)
	blankToNil(&r.Email)
	if r.Password != nil && strings.TrimSpace(*r.Password) == "" {
		r.Password = nil
	}
}
