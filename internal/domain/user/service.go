package user

import "context"

// DirectoryService exposes role-scoped employee listings. The caller is
// identified by user id and role; handlers pass both from the verified
// token.
type DirectoryService interface {
	ListEmployees(ctx context.Context, callerID string, callerRole Role) ([]Profile, error)
	ListSubordinates(ctx context.Context, callerID string, callerRole Role) ([]Profile, error)
}
