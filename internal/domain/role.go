package domain

// Role is a closed enumeration. Every authorization decision matches on it
// exhaustively; free-form role strings are rejected at the boundary.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleEmployer  Role = "Employer"
	RoleJobSeeker Role = "JobSeeker"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleJobSeeker:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
