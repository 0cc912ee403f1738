package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameExists      = errors.New("username already exists")
	ErrEmailExists         = errors.New("email already exists")
	ErrManagerNotFound     = errors.New("manager not found")
	ErrManagerAccessDenied = errors.New("access restricted to managers, team leaders and group leaders")
)
