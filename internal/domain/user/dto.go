package user

import "time"

// Profile is the user shape exposed over the API. Password hash never
// leaves the domain.
type Profile struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	EmployeeID  string  `json:"employee_id"`
	Role        Role    `json:"role"`
	Mobile      *string `json:"mobile,omitempty"`
	DOB         string  `json:"dob"`
	JoiningDate string  `json:"joining_date"`
	ManagerID   *string `json:"manager_id,omitempty"`
}

func NewProfile(u User) Profile {
	return Profile{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		EmployeeID:  u.EmployeeID,
		Role:        u.Role,
		Mobile:      u.Mobile,
		DOB:         u.DOB.Format("2006-01-02"),
		JoiningDate: u.JoiningDate.Format("2006-01-02"),
		ManagerID:   u.ManagerID,
	}
}

func NewProfiles(users []User) []Profile {
	profiles := make([]Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, NewProfile(u))
	}
	return profiles
}

// DaysSinceJoining counts whole days between the joining date and now.
func (u *User) DaysSinceJoining(now time.Time) int {
	days := int(now.Sub(u.JoiningDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
