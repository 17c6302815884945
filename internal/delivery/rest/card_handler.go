package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"board-service/internal/application/command"
	"board-service/internal/application/interfaces"
)

type cardHandler struct {
	cards interfaces.CardService
}

func (h *cardHandler) list(c echo.Context) error {
	columnID, err := queryID(c, "column")
	if err != nil {
		return err
	}
	res, err := h.cards.ListCards(c.Request().Context(), currentUser(c), columnID)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *cardHandler) create(c echo.Context) error {
	var cmd command.CreateCardCommand
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.cards.CreateCard(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusCreated, res.Result)
}

func (h *cardHandler) get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.cards.GetCard(c.Request().Context(), currentUser(c), id)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *cardHandler) update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd := command.UpdateCardCommand{Id: id}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.cards.UpdateCard(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}

func (h *cardHandler) delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.cards.DeleteCard(c.Request().Context(), currentUser(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *cardHandler) move(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd := command.MoveCommand{Id: id}
	if err := c.Bind(&cmd); err != nil {
		return err
	}
	res, err := h.cards.MoveCard(c.Request().Context(), currentUser(c), &cmd)
	if err != nil {
		return err
	}
	return sendJSON(c, http.StatusOK, res.Result)
}
