package dto

import "github.com/acampoh/artesa-api/internal/domain/entity"

// VenderRequest body para POST /api/ventas. PrecioUnitario omitido usa el
// precio actual del producto.
type VenderRequest struct {
	ProductoID     string   `json:"productoId"`
	Cantidad       float64  `json:"cantidad"`
	PrecioUnitario *float64 `json:"precioUnitario,omitempty"`
}

// VenderResponse respuesta 201 de una venta confirmada.
type VenderResponse struct {
	Venta               entity.Venta    `json:"venta"`
	ProductoActualizado entity.Producto `json:"productoActualizado"`
}
