package entities

type Role string

const (
	RoleEmployer Role = "employer"
	RoleSeeker   Role = "seeker"
)

func RoleFromFlag(isEmployer bool) Role {
	if isEmployer {
		return RoleEmployer
	}
	return RoleSeeker
}

func (r Role) IsEmployer() bool {
	return r == RoleEmployer
}

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleSeeker
}
