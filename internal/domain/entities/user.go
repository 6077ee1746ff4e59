package entities

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"jobboard-service/internal/domain"
)

type User struct {
	Id          uint
	CreatedAt   time.Time
	Email       string
	Password    string
	Role        Role
	CompanyName *string
}

func NewUser(email, password string, role Role, companyName *string) *User {
	if companyName != nil {
		trimmed := strings.TrimSpace(*companyName)
		if trimmed == "" {
			companyName = nil
		} else {
			companyName = &trimmed
		}
	}
	return &User{
		CreatedAt:   time.Now().UTC(),
		Email:       strings.TrimSpace(email),
		Password:    password,
		Role:        role,
		CompanyName: companyName,
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return domain.Validation("email must not be empty")
	}
	if u.Password == "" {
		return domain.Validation("password must not be empty")
	}
	if !u.Role.Valid() {
		return domain.Validationf("unknown role %q", u.Role)
	}
	return nil
}

func (u *User) IsEmployer() bool {
	return u.Role.IsEmployer()
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
