package domain

import "time"

// Startup represents one company pinned on the map.
type Startup struct {
	ID           string
	Name         string
	Description  string
	Website      string
	Size         string
	Logo         string
	Founded      int
	Location     Location
	Industry     []string
	IsHiring     bool
	ProvidesVisa bool
	Roles        []Role
	CreatedAt    time.Time
}

// Location pins a startup to a point in the city.
type Location struct {
	Longitude float64
	Latitude  float64
	Address   string
}

// Role is one open position at a startup.
type Role struct {
	ID          string
	Title       string
	Department  string
	Type        RoleType
	Remote      bool
	Description string
	ApplyURL    string
	PostedAt    time.Time
}

// RoleType is the closed set of employment types a role can carry.
type RoleType string

const (
	RoleFullTime   RoleType = "Full-time"
	RolePartTime   RoleType = "Part-time"
	RoleContract   RoleType = "Contract"
	RoleInternship RoleType = "Internship"
)

// Valid reports whether the value is one of the known role types.
func (t RoleType) Valid() bool {
	switch t {
	case RoleFullTime, RolePartTime, RoleContract, RoleInternship:
		return true
	}
	return false
}

// Hiring reports whether the startup counts as hiring. The explicit flag is
// authoritative; a non-empty role list also qualifies so that entries created
// before the flag existed keep matching the open-roles filter.
func (s Startup) Hiring() bool {
	return s.IsHiring || len(s.Roles) > 0
}
