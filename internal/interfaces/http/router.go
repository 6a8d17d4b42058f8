package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acampoh/artesa-api/internal/application/catalogo"
	"github.com/acampoh/artesa-api/internal/application/gastos"
	"github.com/acampoh/artesa-api/internal/application/produccion"
	"github.com/acampoh/artesa-api/internal/application/ventas"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProduccionUC *produccion.UseCase
	VentasUC     *ventas.UseCase
	GastosUC     *gastos.UseCase
	CatalogoUC   *catalogo.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Motores core: producción, ventas, gastos
	produccionHandler := NewProduccionHandler(deps.ProduccionUC)
	producciones := api.Group("/producciones")
	producciones.Post("/", produccionHandler.Producir)
	producciones.Get("/", produccionHandler.Listar)

	ventasHandler := NewVentasHandler(deps.VentasUC)
	ventasGroup := api.Group("/ventas")
	ventasGroup.Post("/", ventasHandler.Vender)
	ventasGroup.Get("/", ventasHandler.Listar)
	api.Get("/historial-stock", ventasHandler.Historial)

	gastosHandler := NewGastosHandler(deps.GastosUC)
	gastosGroup := api.Group("/gastos")
	gastosGroup.Post("/", gastosHandler.Registrar)
	gastosGroup.Get("/", gastosHandler.Listar)
	gastosGroup.Put("/:id", gastosHandler.Actualizar)
	gastosGroup.Delete("/:id", gastosHandler.Eliminar)

	// Catálogo (colaboradores CRUD)
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)

	materiales := api.Group("/materiales")
	materiales.Get("/", catalogoHandler.ListMateriales)
	materiales.Post("/", catalogoHandler.CreateMaterial)
	materiales.Get("/:id", catalogoHandler.GetMaterial)
	materiales.Put("/:id", catalogoHandler.UpdateMaterial)
	materiales.Delete("/:id", catalogoHandler.DeleteMaterial)

	productos := api.Group("/productos")
	productos.Get("/", catalogoHandler.ListProductos)
	productos.Post("/", catalogoHandler.CreateProducto)
	productos.Get("/:id", catalogoHandler.GetProducto)
	productos.Put("/:id", catalogoHandler.UpdateProducto)
	productos.Delete("/:id", catalogoHandler.DeleteProducto)

	recetas := api.Group("/recetas")
	recetas.Get("/", catalogoHandler.ListRecetas)
	recetas.Post("/", catalogoHandler.CreateReceta)
	recetas.Put("/:id", catalogoHandler.UpdateReceta)
	recetas.Delete("/:id", catalogoHandler.DeleteReceta)

	proveedores := api.Group("/proveedores")
	proveedores.Get("/", catalogoHandler.ListProveedores)
	proveedores.Post("/", catalogoHandler.CreateProveedor)
	proveedores.Put("/:id", catalogoHandler.UpdateProveedor)
	proveedores.Delete("/:id", catalogoHandler.DeleteProveedor)

	ferias := api.Group("/ferias")
	ferias.Get("/", catalogoHandler.ListFerias)
	ferias.Post("/", catalogoHandler.CreateFeria)
	ferias.Put("/:id", catalogoHandler.UpdateFeria)
	ferias.Delete("/:id", catalogoHandler.DeleteFeria)

	modelos := api.Group("/modelos")
	modelos.Get("/", catalogoHandler.ListModelos)
	modelos.Post("/", catalogoHandler.CreateModelo)
	modelos.Put("/:id", catalogoHandler.UpdateModelo)
	modelos.Delete("/:id", catalogoHandler.DeleteModelo)
}
