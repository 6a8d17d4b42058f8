package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acampoh/artesa-api/internal/application/dto"
	"github.com/acampoh/artesa-api/internal/domain"
)

// responderError traduce la taxonomía de errores de dominio al contrato HTTP:
// 400 entrada inválida / sin receta / stock insuficiente (con detalle
// estructurado), 404 recurso no encontrado, 409 receta inconsistente.
func responderError(c *fiber.Ctx, err error) error {
	var faltantes *domain.StockMaterialesError
	if errors.As(err, &faltantes) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:    "stock insuficiente de materiales",
			Detalles: faltantes.Faltantes,
		})
	}
	var stockProducto *domain.StockProductoError
	if errors.As(err, &stockProducto) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "stock insuficiente",
			Detalle: &dto.DetalleStockVenta{
				StockActual:        stockProducto.StockActual,
				CantidadSolicitada: stockProducto.CantidadSolicitada,
			},
		})
	}
	var inconsistente *domain.RecetaInconsistenteError
	if errors.As(err, &inconsistente) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: inconsistente.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrSinReceta):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
}

func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
}
