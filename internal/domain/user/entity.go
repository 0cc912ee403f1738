package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleEmployee    Role = "employee"     // Regular employee
	RoleTeamLeader  Role = "team_leader"  // Leads a team, can approve leave
	RoleGroupLeader Role = "group_leader" // Leads several teams
	RoleManager     Role = "manager"      // Full visibility, can approve leave
)

// ParseRole normalizes a free-text role designation into the closed role
// set. Matching is exact on the normalized text, not substring: "Manager
// Trainee" is an employee, not a manager.
func ParseRole(s string) Role {
	normalized := strings.Join(strings.Fields(strings.ToLower(s)), " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")

	switch normalized {
	case "manager":
		return RoleManager
	case "team leader", "team lead", "teamleader":
		return RoleTeamLeader
	case "group leader", "group lead", "groupleader":
		return RoleGroupLeader
	default:
		return RoleEmployee
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleTeamLeader, RoleGroupLeader, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	DOB          time.Time
	Mobile       *string
	JoiningDate  time.Time
	Role         Role
	ManagerID    *string
	EmployeeID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanViewAllReports reports whether the role sees every report rather
// than only its own.
func (u *User) CanViewAllReports() bool {
	return RoleCanViewAllReports(u.Role)
}

// CanApproveLeave reports whether the role may act on the approvals
// queue.
func (u *User) CanApproveLeave() bool {
	return RoleCanApproveLeave(u.Role)
}

func RoleCanViewAllReports(r Role) bool {
	switch r {
	case RoleManager, RoleTeamLeader, RoleGroupLeader:
		return true
	case RoleEmployee:
		return false
	}
	return false
}

func RoleCanApproveLeave(r Role) bool {
	switch r {
	case RoleManager, RoleTeamLeader:
		return true
	case RoleGroupLeader, RoleEmployee:
		return false
	}
	return false
}
