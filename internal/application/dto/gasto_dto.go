package dto

import "github.com/acampoh/artesa-api/internal/domain/entity"

// GastoRequest body para POST/PUT /api/gastos. Para tipo "materiales" son
// obligatorios MaterialID y CantidadMaterial (cantidad comprada que ingresa
// al stock del material).
type GastoRequest struct {
	Fecha            string  `json:"fecha,omitempty"` // RFC 3339; omitida = ahora
	Tipo             string  `json:"tipo"`
	Categoria        string  `json:"categoria,omitempty"`
	Descripcion      string  `json:"descripcion,omitempty"`
	Monto            float64 `json:"monto"`
	Moneda           string  `json:"moneda,omitempty"`
	MedioPago        string  `json:"medioPago,omitempty"`
	ProveedorID      string  `json:"proveedorId,omitempty"`
	FeriaID          string  `json:"feriaId,omitempty"`
	MaterialID       string  `json:"materialId,omitempty"`
	Notas            string  `json:"notas,omitempty"`
	CantidadMaterial float64 `json:"cantidadMaterial,omitempty"`
}

// GastoResponse respuesta 201 de un gasto registrado. StockActualizado indica
// si la compra de material efectivamente sumó stock; Motivo explica el modo
// degradado cuando el materialId no resolvió.
type GastoResponse struct {
	Gasto            entity.Gasto `json:"gasto"`
	StockActualizado bool         `json:"stockActualizado"`
	Motivo           string       `json:"motivo,omitempty"`
}
