package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/fieldteam/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:    "john.doe",
		Email:       "john@example.com",
		Password:    "supersecret",
		DOB:         "1990-04-12",
		JoiningDate: "2020-01-06",
		Role:        "employee",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs.ToMap()
}

func TestRegisterRequestValidate(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, req.Validate())
}

func TestRegisterRequestValidateMissingFields(t *testing.T) {
	req := RegisterRequest{}
	fields := fieldErrors(t, req.Validate())
	for _, f := range []string{"username", "email", "password", "dob", "joining_date", "role"} {
		assert.Contains(t, fields, f)
	}
}

func TestRegisterRequestValidateShortPassword(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "short"
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "password")
}

func TestRegisterRequestValidateDOBToday(t *testing.T) {
	req := validRegisterRequest()
	req.DOB = time.Now().Format("2006-01-02")
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "dob")
}

func TestRegisterRequestValidateDOBYesterday(t *testing.T) {
	req := validRegisterRequest()
	req.DOB = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	assert.NoError(t, req.Validate())
}

func TestRegisterRequestValidateJoiningDateFuture(t *testing.T) {
	req := validRegisterRequest()
	req.JoiningDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "joining_date")
}

func TestRegisterRequestValidateJoiningDateToday(t *testing.T) {
	req := validRegisterRequest()
	req.JoiningDate = time.Now().Format("2006-01-02")
	assert.NoError(t, req.Validate())
}

func TestRegisterRequestValidateBadMobile(t *testing.T) {
	req := validRegisterRequest()
	mobile := "12ab"
	req.Mobile = &mobile
	fields := fieldErrors(t, req.Validate())
	assert.Contains(t, fields, "mobile")
}

func TestLoginRequestValidate(t *testing.T) {
	req := LoginRequest{Username: "john.doe", Password: "supersecret"}
	assert.NoError(t, req.Validate())

	empty := LoginRequest{}
	fields := fieldErrors(t, empty.Validate())
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "password")
}
