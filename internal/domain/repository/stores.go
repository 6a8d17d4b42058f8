package repository

import (
	"context"

	"github.com/acampoh/artesa-api/internal/domain/entity"
)

// Catalogo es el almacén de catálogo: materiales, productos, recetas y las
// entidades de soporte (proveedores, ferias, modelos). El contrato es
// colección completa: List devuelve toda la colección y Save la reemplaza
// entera (no hay API por fila; es el formato de los archivos persistidos).
type Catalogo interface {
	ListMateriales() ([]entity.Material, error)
	SaveMateriales([]entity.Material) error
	ListProductos() ([]entity.Producto, error)
	SaveProductos([]entity.Producto) error
	ListRecetas() ([]entity.Receta, error)
	SaveRecetas([]entity.Receta) error
	ListProveedores() ([]entity.Proveedor, error)
	SaveProveedores([]entity.Proveedor) error
	ListFerias() ([]entity.Feria, error)
	SaveFerias([]entity.Feria) error
	ListModelos() ([]entity.Modelo, error)
	SaveModelos([]entity.Modelo) error
}

// Ledger son los registros append-only: producciones, ventas, gastos e
// historial de stock. Los gastos además admiten reemplazo de colección porque
// su CRUD permite editar y borrar (sin reajustar stock).
type Ledger interface {
	ListProducciones() ([]entity.Produccion, error)
	AppendProduccion(entity.Produccion) error
	ListVentas() ([]entity.Venta, error)
	AppendVenta(entity.Venta) error
	ListGastos() ([]entity.Gasto, error)
	AppendGasto(entity.Gasto) error
	SaveGastos([]entity.Gasto) error
	ListMovimientos() ([]entity.MovimientoStock, error)
	AppendMovimiento(entity.MovimientoStock) error
}

// TxRunner ejecuta una función dentro de una transacción del almacén: todas
// las escrituras hechas a través de cat/led se confirman juntas al retornar
// nil, o se descartan completas si fn devuelve error. Garantiza la secuencia
// validar-luego-confirmar de los motores de stock (todo o nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(cat Catalogo, led Ledger) error) error
}
