package server

import (
	"receiptpro/internal/handler"
	mw "receiptpro/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	sessions       *mw.Sessions
	authHandler    *handler.AuthHandler
	receiptHandler *handler.ReceiptHandler
	adminHandler   *handler.AdminHandler
}

func NewServer(
	sessions *mw.Sessions,
	authHandler *handler.AuthHandler,
	receiptHandler *handler.ReceiptHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		sessions:       sessions,
		authHandler:    authHandler,
		receiptHandler: receiptHandler,
		adminHandler:   adminHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	auth := api.Group("/auth")
	auth.POST("/login", s.authHandler.Login)
	auth.POST("/logout", s.authHandler.Logout)
	auth.GET("/user", s.authHandler.Me, s.sessions.RequireUser())

	// -------- receipts --------
	api.POST("/receipts", s.receiptHandler.Create, s.sessions.RequireUser())
	api.GET("/receipts", s.receiptHandler.List, s.sessions.RequireUser())

	// -------- admin --------
	admin := api.Group("/admin")
	admin.POST("/login", s.adminHandler.Login)
	admin.POST("/logout", s.adminHandler.Logout)
	admin.GET("/status", s.adminHandler.Status)

	requireAdmin := s.sessions.RequireAdmin()
	admin.GET("/users", s.adminHandler.ListUsers, requireAdmin)
	admin.GET("/receipts", s.adminHandler.ListReceipts, requireAdmin)
	admin.POST("/receipts/:id/resend", s.adminHandler.ResendReceipt, requireAdmin)
	admin.POST("/add-credits", s.adminHandler.AddCredits, requireAdmin)
	admin.GET("/stats", s.adminHandler.Stats, requireAdmin)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
