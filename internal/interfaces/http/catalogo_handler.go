package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampoh/artesa-api/internal/application/catalogo"
	"github.com/acampoh/artesa-api/internal/application/dto"
	"github.com/acampoh/artesa-api/internal/domain/entity"
)

// CatalogoHandler maneja el CRUD de catálogo: materiales, productos, recetas,
// proveedores, ferias y modelos.
type CatalogoHandler struct {
	uc *catalogo.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// ── Materiales ────────────────────────────────────────────────────────────────

// ListMateriales GET /api/materiales
func (h *CatalogoHandler) ListMateriales(c *fiber.Ctx) error {
	materiales, err := h.uc.ListMateriales(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if materiales == nil {
		materiales = []entity.Material{}
	}
	return c.JSON(materiales)
}

// GetMaterial GET /api/materiales/:id
func (h *CatalogoHandler) GetMaterial(c *fiber.Ctx) error {
	material, err := h.uc.GetMaterial(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(material)
}

// CreateMaterial POST /api/materiales
func (h *CatalogoHandler) CreateMaterial(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	material, err := h.uc.CreateMaterial(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}

// UpdateMaterial PUT /api/materiales/:id
func (h *CatalogoHandler) UpdateMaterial(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	material, err := h.uc.UpdateMaterial(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(material)
}

// DeleteMaterial DELETE /api/materiales/:id
func (h *CatalogoHandler) DeleteMaterial(c *fiber.Ctx) error {
	if err := h.uc.DeleteMaterial(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProductos GET /api/productos
func (h *CatalogoHandler) ListProductos(c *fiber.Ctx) error {
	productos, err := h.uc.ListProductos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if productos == nil {
		productos = []entity.Producto{}
	}
	return c.JSON(productos)
}

// GetProducto GET /api/productos/:id
func (h *CatalogoHandler) GetProducto(c *fiber.Ctx) error {
	producto, err := h.uc.GetProducto(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

// CreateProducto POST /api/productos
func (h *CatalogoHandler) CreateProducto(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	producto, err := h.uc.CreateProducto(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// UpdateProducto PUT /api/productos/:id
func (h *CatalogoHandler) UpdateProducto(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	producto, err := h.uc.UpdateProducto(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

// DeleteProducto DELETE /api/productos/:id
func (h *CatalogoHandler) DeleteProducto(c *fiber.Ctx) error {
	if err := h.uc.DeleteProducto(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// ListRecetas GET /api/recetas?productoId=
func (h *CatalogoHandler) ListRecetas(c *fiber.Ctx) error {
	recetas, err := h.uc.ListRecetas(c.Context(), c.Query("productoId"))
	if err != nil {
		return responderError(c, err)
	}
	if recetas == nil {
		recetas = []entity.Receta{}
	}
	return c.JSON(recetas)
}

// CreateReceta POST /api/recetas
func (h *CatalogoHandler) CreateReceta(c *fiber.Ctx) error {
	var in dto.CreateRecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	receta, err := h.uc.CreateReceta(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receta)
}

// UpdateReceta PUT /api/recetas/:id
func (h *CatalogoHandler) UpdateReceta(c *fiber.Ctx) error {
	var in dto.UpdateRecetaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	receta, err := h.uc.UpdateReceta(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(receta)
}

// DeleteReceta DELETE /api/recetas/:id
func (h *CatalogoHandler) DeleteReceta(c *fiber.Ctx) error {
	if err := h.uc.DeleteReceta(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// ListProveedores GET /api/proveedores
func (h *CatalogoHandler) ListProveedores(c *fiber.Ctx) error {
	proveedores, err := h.uc.ListProveedores(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if proveedores == nil {
		proveedores = []entity.Proveedor{}
	}
	return c.JSON(proveedores)
}

// CreateProveedor POST /api/proveedores
func (h *CatalogoHandler) CreateProveedor(c *fiber.Ctx) error {
	var in dto.CreateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	proveedor, err := h.uc.CreateProveedor(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proveedor)
}

// UpdateProveedor PUT /api/proveedores/:id
func (h *CatalogoHandler) UpdateProveedor(c *fiber.Ctx) error {
	var in dto.UpdateProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	proveedor, err := h.uc.UpdateProveedor(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(proveedor)
}

// DeleteProveedor DELETE /api/proveedores/:id
func (h *CatalogoHandler) DeleteProveedor(c *fiber.Ctx) error {
	if err := h.uc.DeleteProveedor(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Ferias ────────────────────────────────────────────────────────────────────

// ListFerias GET /api/ferias
func (h *CatalogoHandler) ListFerias(c *fiber.Ctx) error {
	ferias, err := h.uc.ListFerias(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if ferias == nil {
		ferias = []entity.Feria{}
	}
	return c.JSON(ferias)
}

// CreateFeria POST /api/ferias
func (h *CatalogoHandler) CreateFeria(c *fiber.Ctx) error {
	var in dto.CreateFeriaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	feria, err := h.uc.CreateFeria(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feria)
}

// UpdateFeria PUT /api/ferias/:id
func (h *CatalogoHandler) UpdateFeria(c *fiber.Ctx) error {
	var in dto.UpdateFeriaRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	feria, err := h.uc.UpdateFeria(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(feria)
}

// DeleteFeria DELETE /api/ferias/:id
func (h *CatalogoHandler) DeleteFeria(c *fiber.Ctx) error {
	if err := h.uc.DeleteFeria(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Modelos ───────────────────────────────────────────────────────────────────

// ListModelos GET /api/modelos
func (h *CatalogoHandler) ListModelos(c *fiber.Ctx) error {
	modelos, err := h.uc.ListModelos(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	if modelos == nil {
		modelos = []entity.Modelo{}
	}
	return c.JSON(modelos)
}

// CreateModelo POST /api/modelos
func (h *CatalogoHandler) CreateModelo(c *fiber.Ctx) error {
	var in dto.CreateModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	modelo, err := h.uc.CreateModelo(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(modelo)
}

// UpdateModelo PUT /api/modelos/:id
func (h *CatalogoHandler) UpdateModelo(c *fiber.Ctx) error {
	var in dto.UpdateModeloRequest
	if err := c.BodyParser(&in); err != nil {
		return cuerpoInvalido(c)
	}
	modelo, err := h.uc.UpdateModelo(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(modelo)
}

// DeleteModelo DELETE /api/modelos/:id
func (h *CatalogoHandler) DeleteModelo(c *fiber.Ctx) error {
	if err := h.uc.DeleteModelo(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
