package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobboard-service/internal/application/command"
	"jobboard-service/internal/application/interfaces"
)

type AuthHandler struct {
	users interfaces.UserService
}

func NewAuthHandler(users interfaces.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	res, err := h.users.Register(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := bindAndValidate(c, &cmd); err != nil {
		return err
	}

	res, err := h.users.Login(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
