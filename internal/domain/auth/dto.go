package auth

import (
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DOB         string  `json:"dob"`
	JoiningDate string  `json:"joining_date"`
	Role        string  `json:"role"`
	Mobile      *string `json:"mobile,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	// Username
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters and may only contain letters, numbers, dots, underscores, and hyphens",
		})
	}

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	} else if len(r.Password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	// Date of birth: must parse and lie strictly before today.
	if validator.IsEmpty(r.DOB) {
		errs = append(errs, validator.ValidationError{
			Field:   "dob",
			Message: "dob is required",
		})
	} else if dob, ok := validator.IsValidDate(r.DOB); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "dob",
			Message: "dob must be a valid date in YYYY-MM-DD format",
		})
	} else {
		today := startOfDay(time.Now())
		if !dob.Before(today) {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be before today",
			})
		}
	}

	// Joining date: must parse and not lie after end of today.
	if validator.IsEmpty(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date is required",
		})
	} else if joining, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "joining_date",
			Message: "joining_date must be a valid date in YYYY-MM-DD format",
		})
	} else {
		endOfToday := startOfDay(time.Now()).AddDate(0, 0, 1)
		if !joining.Before(endOfToday) {
			errs = append(errs, validator.ValidationError{
				Field:   "joining_date",
				Message: "joining_date must not be in the future",
			})
		}
	}

	// Role
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	// Mobile (optional)
	if r.Mobile != nil && !validator.IsEmpty(*r.Mobile) && !validator.IsValidMobile(*r.Mobile) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile",
			Message: "mobile must be a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	Token          string    `json:"token"`
	TokenExpiresAt int64     `json:"token_expires_at"`
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Role           user.Role `json:"role"`
	EmployeeID     string    `json:"employee_id"`
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
