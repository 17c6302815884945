package rest

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"board-service/internal/domain"
)

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.Validationf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// queryID reads an optional id filter. An absent parameter yields nil.
func queryID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.Validationf("invalid %s id %q", name, raw)
	}
	return &id, nil
}
