package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcerialilis/lilis-api/internal/application/dto"
	appinventory "github.com/dulcerialilis/lilis-api/internal/application/inventory"
	"github.com/dulcerialilis/lilis-api/internal/domain"
	"github.com/dulcerialilis/lilis-api/internal/domain/repository"
)

// InventoryHandler maneja el ledger de movimientos, la proyección de stock y
// el kardex PDF. El rechazo de validación se responde con 422 y el detalle
// por campo; nunca como error 500.
type InventoryHandler struct {
	movements *appinventory.MovementUseCase
	reports   *appinventory.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *appinventory.MovementUseCase, reports *appinventory.ReportUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, reports: reports}
}

// CreateMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "Movimiento candidato"
// @Success      201   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, res, err := h.movements.Create(in, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto, bodega o proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if res != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:   "MOVEMENT_REJECTED",
			Fields: res.Fields(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateMovement godoc
// @Summary      Editar movimiento (revalida con auto-exclusión)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.MovementRequest  true  "Movimiento corregido"
// @Success      200   {object}  dto.MovementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/inventory/movements/{id} [put]
func (h *InventoryHandler) UpdateMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, res, err := h.movements.Update(c.Params("id"), in, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento, producto, bodega o proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if res != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{
			Code:   "MOVEMENT_REJECTED",
			Fields: res.Fields(),
		})
	}
	return c.JSON(out)
}

// DeleteMovement godoc
// @Summary      Eliminar movimiento del ledger
// @Tags         inventory
// @Security     Bearer
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.movements.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMovement godoc
// @Summary      Obtener movimiento por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	out, err := h.movements.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Consultar el ledger con filtros
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id           query  string  false  "Filtrar por producto"
// @Param        source_warehouse_id  query  string  false  "Filtrar por bodega origen"
// @Param        dest_warehouse_id    query  string  false  "Filtrar por bodega destino"
// @Param        kind                 query  string  false  "Filtrar por tipo"
// @Param        limit                query  int     false  "Límite"   default(20)
// @Param        offset               query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.MovementFilter{
		ProductID:         c.Query("product_id"),
		SourceWarehouseID: c.Query("source_warehouse_id"),
		DestWarehouseID:   c.Query("dest_warehouse_id"),
		Kind:              c.Query("kind"),
		Limit:             limit,
		Offset:            offset,
	}
	out, err := h.movements.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Proyectar stock de un producto en una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true   "ID del producto"
// @Param        warehouse_id  query  string  true   "ID de la bodega"
// @Param        exclude_id    query  string  false  "Movimiento a excluir (edición en curso)"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	if productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	stock, err := h.movements.ProjectStock(productID, warehouseID, c.Query("exclude_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockResponse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Stock:       stock,
	})
}

// GetKardex godoc
// @Summary      Kardex PDF de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/kardex [get]
func (h *InventoryHandler) GetKardex(c *fiber.Ctx) error {
	pdfBytes, err := h.reports.GenerateKardex(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="kardex.pdf"`)
	return c.Send(pdfBytes)
}
