package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampoh/artesa-api/internal/application/dto"
	"github.com/acampoh/artesa-api/internal/application/ventas"
	"github.com/acampoh/artesa-api/internal/domain/entity"
)

// VentasHandler maneja las peticiones HTTP de ventas e historial de stock.
type VentasHandler struct {
	uc *ventas.UseCase
}

// NewVentasHandler construye el handler.
func NewVentasHandler(uc *ventas.UseCase) *VentasHandler {
	return &VentasHandler{uc: uc}
}

// Vender godoc
// @Summary      Registrar una venta
// @Description  Descuenta stock del producto y registra la venta con su movimiento de historial.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VenderRequest  true  "productoId, cantidad, precioUnitario (opcional)"
// @Success      201   {object}  dto.VenderResponse
// @Failure      400   {object}  dto.ErrorResponse  "entrada inválida o stock insuficiente (con detalle)"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentasHandler) Vender(c *fiber.Ctx) error {
	var in dto.VenderRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	res, err := h.uc.Vender(c.Context(), ventas.Input{
		ProductoID:     in.ProductoID,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.VenderResponse{
		Venta:               res.Venta,
		ProductoActualizado: res.Producto,
	})
}

// Listar godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  entity.Venta
// @Router       /api/ventas [get]
func (h *VentasHandler) Listar(c *fiber.Ctx) error {
	lista, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if lista == nil {
		lista = []entity.Venta{}
	}
	return c.JSON(lista)
}

// Historial godoc
// @Summary      Listar historial de movimientos de stock
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  entity.MovimientoStock
// @Router       /api/historial-stock [get]
func (h *VentasHandler) Historial(c *fiber.Ctx) error {
	movimientos, err := h.uc.ListarHistorial(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if movimientos == nil {
		movimientos = []entity.MovimientoStock{}
	}
	return c.JSON(movimientos)
}
