package directory

import (
	"context"
	"fmt"

	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
)

type DirectoryServiceImpl struct {
	user.UserRepository
}

func NewDirectoryService(userRepository user.UserRepository) user.DirectoryService {
	return &DirectoryServiceImpl{
		UserRepository: userRepository,
	}
}

// ListEmployees implements user.DirectoryService. Managers and group
// leaders see every non-manager; team leaders see only their own
// reports.
func (s *DirectoryServiceImpl) ListEmployees(ctx context.Context, callerID string, callerRole user.Role) ([]user.Profile, error) {
	if !user.RoleCanViewAllReports(callerRole) {
		return nil, user.ErrManagerAccessDenied
	}

	var (
		employees []user.User
		err       error
	)

	if callerRole == user.RoleTeamLeader {
		employees, err = s.UserRepository.ListByManager(ctx, callerID)
	} else {
		employees, err = s.UserRepository.ListNonManagers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return user.NewProfiles(employees), nil
}

// ListSubordinates implements user.DirectoryService.
func (s *DirectoryServiceImpl) ListSubordinates(ctx context.Context, callerID string, callerRole user.Role) ([]user.Profile, error) {
	if !user.RoleCanViewAllReports(callerRole) {
		return nil, user.ErrManagerAccessDenied
	}

	subordinates, err := s.UserRepository.ListByManager(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subordinates: %w", err)
	}

	return user.NewProfiles(subordinates), nil
}
