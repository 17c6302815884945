package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"board-service/internal/application/command"
	"board-service/internal/application/interfaces"
)

type columnHandler struct {
	columns interfaces.ColumnService
}

func (h *columnHandler) list(c echo.Context) error {
	boardID, err := queryID(c, "board")
	if err != nil {
		return err
	}
	res, err := h.columns.ListColumns(c.Request().Context(), currentUser(c), boardID)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *columnHandler) create(c echo.Context) error {
	var cmd command.CreateColumnCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.columns.CreateColumn(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusCreated, res.Result)
}

func (h *columnHandler) get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.columns.GetColumn(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *columnHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd := command.UpdateColumnCommand{Id: id}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.columns.UpdateColumn(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *columnHandler) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.columns.DeleteColumn(c.Request().Context(), currentUser(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *columnHandler) move(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd := command.MoveCommand{Id: id}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.columns.MoveColumn(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}
