package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/acampoh/artesa-api/internal/application/dto"
	"github.com/acampoh/artesa-api/internal/application/gastos"
	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
)

// GastosHandler maneja las peticiones HTTP de gastos.
type GastosHandler struct {
	uc *gastos.UseCase
}

// NewGastosHandler construye el handler.
func NewGastosHandler(uc *gastos.UseCase) *GastosHandler {
	return &GastosHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar un gasto
// @Description  Registra el gasto; si es tipo "materiales" además suma la cantidad comprada al stock del material.
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GastoRequest  true  "tipo, monto; para materiales: materialId y cantidadMaterial"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastosHandler) Registrar(c *fiber.Ctx) error {
	in, err := parseGasto(c)
	if err != nil {
		return responderError(c, err)
	}
	res, err := h.uc.Registrar(c.Context(), *in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.GastoResponse{
		Gasto:            res.Gasto,
		StockActualizado: res.StockActualizado,
		Motivo:           res.Motivo,
	})
}

// Actualizar godoc
// @Summary      Editar un gasto
// @Description  Reescribe el gasto. El stock de materiales nunca se reajusta retroactivamente.
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del gasto"
// @Param        body  body  dto.GastoRequest true  "campos del gasto"
// @Success      200   {object}  entity.Gasto
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [put]
func (h *GastosHandler) Actualizar(c *fiber.Ctx) error {
	in, err := parseGasto(c)
	if err != nil {
		return responderError(c, err)
	}
	gasto, err := h.uc.Actualizar(c.Context(), c.Params("id"), *in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(gasto)
}

// Eliminar godoc
// @Summary      Borrar un gasto
// @Description  Borra el gasto. El stock de materiales no se revierte.
// @Tags         gastos
// @Produce      json
// @Param        id  path  string  true  "ID del gasto"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [delete]
func (h *GastosHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Listar godoc
// @Summary      Listar gastos
// @Tags         gastos
// @Produce      json
// @Success      200  {array}  entity.Gasto
// @Router       /api/gastos [get]
func (h *GastosHandler) Listar(c *fiber.Ctx) error {
	lista, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if lista == nil {
		lista = []entity.Gasto{}
	}
	return c.JSON(lista)
}

func parseGasto(c *fiber.Ctx) (*gastos.Input, error) {
	var in dto.GastoRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	var fecha time.Time
	if in.Fecha != "" {
		t, err := time.Parse(time.RFC3339, in.Fecha)
		if err != nil {
			if t, err = time.Parse("2006-01-02", in.Fecha); err != nil {
				return nil, domain.ErrInvalidInput
			}
		}
		fecha = t
	}
	return &gastos.Input{
		Fecha:            fecha,
		Tipo:             in.Tipo,
		Categoria:        in.Categoria,
		Descripcion:      in.Descripcion,
		Monto:            in.Monto,
		Moneda:           in.Moneda,
		MedioPago:        in.MedioPago,
		ProveedorID:      in.ProveedorID,
		FeriaID:          in.FeriaID,
		MaterialID:       in.MaterialID,
		Notas:            in.Notas,
		CantidadMaterial: in.CantidadMaterial,
	}, nil
}
