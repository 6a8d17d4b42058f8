package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampoh/artesa-api/internal/application/dto"
	"github.com/acampoh/artesa-api/internal/application/produccion"
	"github.com/acampoh/artesa-api/internal/domain/entity"
)

// ProduccionHandler maneja las peticiones HTTP de producciones.
type ProduccionHandler struct {
	uc *produccion.UseCase
}

// NewProduccionHandler construye el handler.
func NewProduccionHandler(uc *produccion.UseCase) *ProduccionHandler {
	return &ProduccionHandler{uc: uc}
}

// Producir godoc
// @Summary      Registrar una producción
// @Description  Consume los materiales de la receta y suma el stock del producto, todo o nada.
// @Tags         producciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProducirRequest  true  "productoId, cantidad, unidadesBuenas (lotes), modeloId"
// @Success      201   {object}  dto.ProducirResponse
// @Failure      400   {object}  dto.ErrorResponse  "entrada inválida, sin receta o stock insuficiente (con detalles)"
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "receta referencia un material inexistente"
// @Router       /api/producciones [post]
func (h *ProduccionHandler) Producir(c *fiber.Ctx) error {
	var in dto.ProducirRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	res, err := h.uc.Producir(c.Context(), produccion.Input{
		ProductoID:     in.ProductoID,
		Cantidad:       in.Cantidad,
		UnidadesBuenas: in.UnidadesBuenas,
		ModeloID:       in.ModeloID,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProducirResponse{
		Produccion:          res.Produccion,
		ProductoActualizado: res.Producto,
	})
}

// Listar godoc
// @Summary      Listar producciones
// @Tags         producciones
// @Produce      json
// @Success      200  {array}  entity.Produccion
// @Router       /api/producciones [get]
func (h *ProduccionHandler) Listar(c *fiber.Ctx) error {
	producciones, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if producciones == nil {
		producciones = []entity.Produccion{} // nunca "null" en la respuesta
	}
	return c.JSON(producciones)
}
