package entities

// Caller is the verified identity attached to an authenticated request.
type Caller struct {
	UserID      uint    `json:"user_id"`
	Email       string  `json:"email"`
	Role        Role    `json:"role"`
	CompanyName *string `json:"company_name,omitempty"`
}

func NewCallerFromUser(user *User) Caller {
	return Caller{
		UserID:      user.Id,
		Email:       user.Email,
		Role:        user.Role,
		CompanyName: user.CompanyName,
	}
}

func (c Caller) IsEmployer() bool {
	return c.Role.IsEmployer()
}
