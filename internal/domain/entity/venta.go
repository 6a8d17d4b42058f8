package entity

import "time"

// Venta es el registro inmutable de una venta confirmada.
type Venta struct {
	ID             string    `json:"id"`
	ProductoID     string    `json:"productoId"`
	Cantidad       float64   `json:"cantidad"`
	PrecioUnitario float64   `json:"precioUnitario"`
	MontoTotal     float64   `json:"montoTotal"`
	Fecha          time.Time `json:"fecha"`
}
