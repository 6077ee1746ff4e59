package common

type UserResult struct {
	UserID      uint    `json:"user_id"`
	Email       string  `json:"email"`
	IsEmployer  bool    `json:"is_employer"`
	CompanyName *string `json:"company_name"`
}
