package dto

import (
	"flightdesk/internal/domains/user/model"
)

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=64"`
	Login    string `json:"login" validate:"required,max=64"`
	Password string `json:"password" validate:"required,min=4,max=64"`
}

// ToModel builds the stored row. The caller supplies the login digest and the
// bcrypt password hash; plaintext credentials never reach the table.
func (c *RegisterUserRequest) ToModel(loginDigest, passwordHash string) model.User {
	return model.User{
		UserName: c.Name,
		Login:    loginDigest,
		Password: passwordHash,
	}
}

type CredentialsRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}
