package entity

import "time"

// Feria es un evento de venta presencial (feria, mercado, exposición).
type Feria struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Lugar       string    `json:"lugar,omitempty"`
	FechaInicio time.Time `json:"fechaInicio"`
	FechaFin    time.Time `json:"fechaFin"`
	CostoPuesto float64   `json:"costoPuesto,omitempty"`
	Notas       string    `json:"notas,omitempty"`
}
