package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reaksa/stockford-api/internal/application/auth"
	"github.com/reaksa/stockford-api/internal/application/inventory"
	"github.com/reaksa/stockford-api/internal/application/usecase"
	"github.com/reaksa/stockford-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	AdjustStock *inventory.AdjustStockUseCase
	ImportUC    *inventory.ImportUseCase
	ReportUC    *usecase.ReportUseCase
	UserUC      *usecase.UserUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, /me requiere token
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items: lecturas para cualquier usuario autenticado, mutaciones solo admin
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.AdjustStock, deps.ImportUC)
	adminOnly := RequireRole(entity.RoleAdmin)
	items.Get("/", itemHandler.List)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Post("/import", adminOnly, itemHandler.Import)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", adminOnly, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)
	items.Post("/:id/stock-adjustment", adminOnly, itemHandler.AdjustStock)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/critical-stock", reportHandler.CriticalStock)
	reports.Get("/critical-stock/pdf", reportHandler.CriticalStockPDF)
	reports.Get("/daily-movements", reportHandler.DailyMovements)
	reports.Get("/summary", reportHandler.Summary)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
