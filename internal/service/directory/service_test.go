package directory

import (
	"context"
	"testing"

	"github.com/fieldteam/attendance-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmployeeID(ctx context.Context, employeeID string) (user.User, error) {
	for _, u := range f.users {
		if u.EmployeeID == employeeID {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]user.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) ListNonManagers(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.Role != user.RoleManager {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListByManager(ctx context.Context, managerID string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.ManagerID != nil && *u.ManagerID == managerID {
			out = append(out, u)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func seededRepo() *fakeUserRepo {
	return &fakeUserRepo{users: []user.User{
		{ID: "mgr-id", Username: "boss", Role: user.RoleManager, EmployeeID: "EMP000001"},
		{ID: "tl-id", Username: "lead", Role: user.RoleTeamLeader, EmployeeID: "EMP000002"},
		{ID: "alice-id", Username: "alice", Role: user.RoleEmployee, ManagerID: strPtr("tl-id"), EmployeeID: "EMP000003"},
		{ID: "bob-id", Username: "bob", Role: user.RoleEmployee, ManagerID: strPtr("mgr-id"), EmployeeID: "EMP000004"},
	}}
}

func TestListEmployeesManager(t *testing.T) {
	svc := NewDirectoryService(seededRepo())

	profiles, err := svc.ListEmployees(context.Background(), "mgr-id", user.RoleManager)
	require.NoError(t, err)

	// Every non-manager, team leaders included.
	require.Len(t, profiles, 3)
	names := []string{profiles[0].Username, profiles[1].Username, profiles[2].Username}
	assert.ElementsMatch(t, []string{"lead", "alice", "bob"}, names)
}

func TestListEmployeesGroupLeader(t *testing.T) {
	svc := NewDirectoryService(seededRepo())

	profiles, err := svc.ListEmployees(context.Background(), "gl-id", user.RoleGroupLeader)
	require.NoError(t, err)
	assert.Len(t, profiles, 3)
}

func TestListEmployeesTeamLeaderScopedToOwnTeam(t *testing.T) {
	svc := NewDirectoryService(seededRepo())

	profiles, err := svc.ListEmployees(context.Background(), "tl-id", user.RoleTeamLeader)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "alice", profiles[0].Username)
}

func TestListEmployeesForbiddenForEmployee(t *testing.T) {
	svc := NewDirectoryService(seededRepo())

	_, err := svc.ListEmployees(context.Background(), "alice-id", user.RoleEmployee)
	assert.ErrorIs(t, err, user.ErrManagerAccessDenied)
}

func TestListSubordinates(t *testing.T) {
	svc := NewDirectoryService(seededRepo())

	profiles, err := svc.ListSubordinates(context.Background(), "mgr-id", user.RoleManager)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "bob", profiles[0].Username)
}

func TestListSubordinatesForbiddenForEmployee(t *testing.T) {
	svc := NewDirectoryService(seededRepo())

	_, err := svc.ListSubordinates(context.Background(), "alice-id", user.RoleEmployee)
	assert.ErrorIs(t, err, user.ErrManagerAccessDenied)
}
