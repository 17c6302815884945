package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"board-service/internal/application/command"
	"board-service/internal/application/interfaces"
)

type userHandler struct {
	users interfaces.UserService
}

func (h *userHandler) register(c echo.Context) error {
	var cmd command.RegisterUserCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.users.Register(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusCreated, res)
}

func (h *userHandler) login(c echo.Context) error {
	var cmd command.LoginUserCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.users.Login(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res)
}

func (h *userHandler) refresh(c echo.Context) error {
	var cmd command.RefreshTokenCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.users.Refresh(c.Request().Context(), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res)
}

func (h *userHandler) profile(c echo.Context) error {
	res, err := h.users.GetProfile(c.Request().Context(), currentUser(c))
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *userHandler) changePassword(c echo.Context) error {
	var cmd command.ChangePasswordCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	if err := h.users.ChangePassword(c.Request().Context(), currentUser(c), &cmd); err != nil {
		return err
	}
	return sendMessage(c, http.StatusOK, "Password changed successfully")
}

func (h *userHandler) logout(c echo.Context) error {
	var cmd command.LogoutCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	if err := h.users.Logout(c.Request().Context(), currentUser(c), &cmd); err != nil {
		return err
	}
	return sendMessage(c, http.StatusOK, "Logout success")
}

func (h *userHandler) changeSubscription(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd := command.ChangeSubscriptionCommand{UserId: id}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.users.ChangeSubscription(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}
