package entity

import "time"

// MaterialUsado registra el consumo real de un material en una producción.
type MaterialUsado struct {
	MaterialID string  `json:"materialId"`
	Cantidad   float64 `json:"cantidad"`
}

// Produccion es el registro inmutable de una producción confirmada: auditoría
// de qué se fabricó y qué materiales consumió. Se crea una sola vez, nunca se
// edita.
type Produccion struct {
	ID               string          `json:"id"`
	ProductoID       string          `json:"productoId"`
	ModeloID         string          `json:"modeloId,omitempty"` // etiqueta de auditoría opcional del caller
	Cantidad         float64         `json:"cantidad"`
	UnidadesBuenas   float64         `json:"unidadesBuenas"` // unidades que entraron al stock (== Cantidad salvo lotes con merma)
	TipoProduccion   string          `json:"tipoProduccion"`
	Fecha            time.Time       `json:"fecha"`
	MaterialesUsados []MaterialUsado `json:"materialesUsados"`
}
