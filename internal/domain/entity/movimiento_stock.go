package entity

import "time"

// Tipos de movimiento del historial de stock.
const (
	MovimientoVenta = "venta"
)

// MovimientoStock es una entrada append-only del historial de stock de un
// producto: delta con signo más el stock antes y después. Hoy solo las ventas
// emiten movimientos; producciones y compras de material no (asimetría
// heredada del contrato de datos que consume el frontend).
type MovimientoStock struct {
	ID             string    `json:"id"`
	ProductoID     string    `json:"productoId"`
	TipoMovimiento string    `json:"tipoMovimiento"`
	Cantidad       float64   `json:"cantidad"` // delta con signo (negativo en ventas)
	StockAntes     float64   `json:"stockAntes"`
	StockDespues   float64   `json:"stockDespues"`
	VentaID        string    `json:"ventaId,omitempty"`
	Fecha          time.Time `json:"fecha"`
}
