package command

type RegisterUserCommand struct {
	Email       string  `json:"email" validate:"required,email,max=120"`
	Password    string  `json:"password" validate:"required,max=128"`
	IsEmployer  bool    `json:"is_employer"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=120"`
}

type RegisterUserCommandResult struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}
