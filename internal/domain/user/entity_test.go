package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
	}{
		{"manager", RoleManager},
		{"Manager", RoleManager},
		{"  MANAGER  ", RoleManager},
		{"team leader", RoleTeamLeader},
		{"Team_Leader", RoleTeamLeader},
		{"team-lead", RoleTeamLeader},
		{"TeamLeader", RoleTeamLeader},
		{"group leader", RoleGroupLeader},
		{"Group-Lead", RoleGroupLeader},
		{"employee", RoleEmployee},
		{"", RoleEmployee},
		{"intern", RoleEmployee},
		// Exact match only: a manager trainee is not a manager.
		{"Manager Trainee", RoleEmployee},
		{"assistant manager", RoleEmployee},
		{"team leader intern", RoleEmployee},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ParseRole(c.input), "ParseRole(%q)", c.input)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleEmployee, RoleTeamLeader, RoleGroupLeader, RoleManager} {
		assert.True(t, r.Valid(), "role %q", r)
	}
	assert.False(t, Role("owner").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleCanViewAllReports(t *testing.T) {
	assert.True(t, RoleCanViewAllReports(RoleManager))
	assert.True(t, RoleCanViewAllReports(RoleTeamLeader))
	assert.True(t, RoleCanViewAllReports(RoleGroupLeader))
	assert.False(t, RoleCanViewAllReports(RoleEmployee))
	assert.False(t, RoleCanViewAllReports(Role("bogus")))
}

func TestRoleCanApproveLeave(t *testing.T) {
	assert.True(t, RoleCanApproveLeave(RoleManager))
	assert.True(t, RoleCanApproveLeave(RoleTeamLeader))
	assert.False(t, RoleCanApproveLeave(RoleGroupLeader))
	assert.False(t, RoleCanApproveLeave(RoleEmployee))
}

func TestDaysSinceJoining(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	u := User{JoiningDate: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 10, u.DaysSinceJoining(now))

	sameDay := User{JoiningDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 0, sameDay.DaysSinceJoining(now))

	future := User{JoiningDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 0, future.DaysSinceJoining(now))
}
