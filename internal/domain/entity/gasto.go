package entity

import "time"

// Tipos de gasto.
const (
	GastoMateriales = "materiales"
	GastoFeria      = "feria"
	GastoOtro       = "otro"
)

// Gasto es un egreso registrado. CantidadMaterial solo tiene significado
// cuando Tipo == "materiales": es la cantidad comprada que ingresa al stock
// del material referenciado. Editar o borrar un gasto existente nunca vuelve a
// ajustar stock (decisión de producto explícita).
type Gasto struct {
	ID               string    `json:"id"`
	Fecha            time.Time `json:"fecha"`
	Tipo             string    `json:"tipo"`
	Categoria        string    `json:"categoria,omitempty"`
	Descripcion      string    `json:"descripcion"`
	Monto            float64   `json:"monto"`
	Moneda           string    `json:"moneda,omitempty"`
	MedioPago        string    `json:"medioPago,omitempty"`
	ProveedorID      string    `json:"proveedorId,omitempty"`
	FeriaID          string    `json:"feriaId,omitempty"`
	MaterialID       string    `json:"materialId,omitempty"`
	Notas            string    `json:"notas,omitempty"`
	CantidadMaterial float64   `json:"cantidadMaterial,omitempty"`
}
