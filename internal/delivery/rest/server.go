// Package rest exposes the board services over HTTP.
package rest

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"board-service/internal/application/interfaces"
)

type Services struct {
	Users   interfaces.UserService
	Boards  interfaces.BoardService
	Columns interfaces.ColumnService
	Cards   interfaces.CardService
}

// HealthCheck reports whether the service can reach its dependencies.
type HealthCheck func(ctx context.Context) error

type Server struct {
	echo   *echo.Echo
	logger *log.Logger
}

func NewServer(services Services, health HealthCheck, logger *log.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))

	e.GET("/healthz", func(c echo.Context) error {
		if health != nil {
			if err := health(c.Request().Context()); err != nil {
				logger.Warn("health check failed", "err", err)
				return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
			}
		}
		return sendMessage(c, http.StatusOK, "ok")
	})

	users := &userHandler{users: services.Users}
	boards := &boardHandler{boards: services.Boards}
	columns := &columnHandler{columns: services.Columns}
	cards := &cardHandler{cards: services.Cards}

	e.POST("/user/register", users.register)
	e.POST("/user/login", users.login)
	e.POST("/user/refresh", users.refresh)

	auth := requireUser(services.Users)
	e.GET("/user/profile", users.profile, auth)
	e.POST("/user/changepassword", users.changePassword, auth)
	e.POST("/user/logout", users.logout, auth)
	e.PATCH("/user/subscription/:id", users.changeSubscription, auth, requireAdmin)

	e.GET("/board", boards.list, auth)
	e.POST("/board", boards.create, auth)
	e.GET("/board/:id", boards.get, auth)
	e.PUT("/board/:id", boards.update, auth)
	e.DELETE("/board/:id", boards.delete, auth)

	e.GET("/column", columns.list, auth)
	e.POST("/column", columns.create, auth)
	e.GET("/column/:id", columns.get, auth)
	e.PUT("/column/:id", columns.update, auth)
	e.DELETE("/column/:id", columns.delete, auth)
	e.POST("/movecolumn/:id", columns.move, auth)

	e.GET("/card", cards.list, auth)
	e.POST("/card", cards.create, auth)
	e.GET("/card/:id", cards.get, auth)
	e.PUT("/card/:id", cards.update, auth)
	e.DELETE("/card/:id", cards.delete, auth)
	e.POST("/movecard/:id", cards.move, auth)

	return &Server{echo: e, logger: logger}
}

// Handler returns the router, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until Shutdown is called. It returns
// http.ErrServerClosed after a clean shutdown.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
