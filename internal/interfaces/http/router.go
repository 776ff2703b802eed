package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcerialilis/lilis-api/internal/application/auth"
	appinventory "github.com/dulcerialilis/lilis-api/internal/application/inventory"
	"github.com/dulcerialilis/lilis-api/internal/application/usecase"
	"github.com/dulcerialilis/lilis-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.SupplierUseCase
	WarehouseUC *usecase.WarehouseUseCase
	MovementUC  *appinventory.MovementUseCase
	ReportUC    *appinventory.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Autorización por rol en cada grupo;
// ADMIN pasa siempre (ver RequireRole).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authRequired := AuthMiddleware(deps.JWTSecret)

	// Auth: login público, registro solo ADMIN.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authRequired, RequireRole(), authHandler.Register)

	// Usuarios (solo ADMIN)
	users := api.Group("/users", authRequired, RequireRole())
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Roles con acceso de escritura al catálogo.
	catalogWrite := RequireRole(
		entity.RoleOperCompras, entity.RoleOperInventario, entity.RoleOperVentas,
	)
	// Lectura amplia: cualquier rol operativo o de consulta.
	wideRead := RequireRole(
		entity.RoleOperInventario, entity.RoleOperCompras, entity.RoleOperVentas,
		entity.RoleOperProduccion, entity.RoleAnalistaFin, entity.RoleAuditor,
	)

	// Categorías
	categories := api.Group("/categories", authRequired)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", wideRead, categoryHandler.List)
	categories.Get("/:id", wideRead, categoryHandler.GetByID)
	categories.Post("/", catalogWrite, categoryHandler.Create)
	categories.Put("/:id", catalogWrite, categoryHandler.Update)
	categories.Delete("/:id", RequireRole(), categoryHandler.Delete)

	// Productos
	products := api.Group("/products", authRequired)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", wideRead, productHandler.List)
	products.Get("/:id", wideRead, productHandler.GetByID)
	products.Post("/", catalogWrite, productHandler.Create)
	products.Put("/:id", catalogWrite, productHandler.Update)
	products.Delete("/:id", RequireRole(), productHandler.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers", authRequired)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", RequireRole(entity.RoleOperCompras, entity.RoleAuditor), supplierHandler.List)
	suppliers.Get("/:id", RequireRole(entity.RoleOperCompras, entity.RoleAuditor), supplierHandler.GetByID)
	suppliers.Post("/", RequireRole(entity.RoleOperCompras), supplierHandler.Create)
	suppliers.Put("/:id", RequireRole(entity.RoleOperCompras), supplierHandler.Update)
	suppliers.Delete("/:id", RequireRole(entity.RoleOperCompras), supplierHandler.Delete)

	// Bodegas
	warehouses := api.Group("/warehouses", authRequired)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", RequireRole(entity.RoleOperInventario, entity.RoleAuditor), warehouseHandler.List)
	warehouses.Get("/:id", RequireRole(entity.RoleOperInventario, entity.RoleAuditor), warehouseHandler.GetByID)
	warehouses.Post("/", RequireRole(entity.RoleOperInventario), warehouseHandler.Create)
	warehouses.Put("/:id", RequireRole(entity.RoleOperInventario), warehouseHandler.Update)
	warehouses.Delete("/:id", RequireRole(entity.RoleOperInventario), warehouseHandler.Delete)

	// Inventario: ledger de movimientos, stock y kardex.
	invRead := RequireRole(entity.RoleOperInventario, entity.RoleAuditor)
	invWrite := RequireRole(entity.RoleOperInventario)
	inv := api.Group("/inventory", authRequired)
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.ReportUC)
	inv.Get("/movements", invRead, inventoryHandler.ListMovements)
	inv.Get("/movements/:id", invRead, inventoryHandler.GetMovement)
	inv.Post("/movements", invWrite, inventoryHandler.CreateMovement)
	inv.Put("/movements/:id", invWrite, inventoryHandler.UpdateMovement)
	inv.Delete("/movements/:id", invWrite, inventoryHandler.DeleteMovement)
	inv.Get("/stock", invRead, inventoryHandler.GetStock)
	inv.Get("/products/:id/kardex", invRead, inventoryHandler.GetKardex)
}
