package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"board-service/internal/application/command"
	"board-service/internal/application/interfaces"
)

type boardHandler struct {
	boards interfaces.BoardService
}

func (h *boardHandler) list(c echo.Context) error {
	res, err := h.boards.ListBoards(c.Request().Context(), currentUser(c))
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *boardHandler) create(c echo.Context) error {
	var cmd command.CreateBoardCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.boards.CreateBoard(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusCreated, res.Result)
}

func (h *boardHandler) get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.boards.GetBoard(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *boardHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd := command.UpdateBoardCommand{Id: id}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.boards.UpdateBoard(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *boardHandler) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.boards.DeleteBoard(c.Request().Context(), currentUser(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
