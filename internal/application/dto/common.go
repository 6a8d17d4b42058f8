package dto

import "github.com/acampoh/artesa-api/internal/domain"

// ErrorResponse cuerpo de error HTTP. Detalles viaja solo en faltantes de
// producción; Detalle solo en faltante de stock de venta.
type ErrorResponse struct {
	Error    string                 `json:"error"`
	Detalles []domain.FaltanteStock `json:"detalles,omitempty"`
	Detalle  *DetalleStockVenta     `json:"detalle,omitempty"`
}

// DetalleStockVenta detalle de stock insuficiente al vender.
type DetalleStockVenta struct {
	StockActual        float64 `json:"stockActual"`
	CantidadSolicitada float64 `json:"cantidadSolicitada"`
}
