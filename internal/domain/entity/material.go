package entity

// Material es un insumo consumible con stock propio. El stock solo cambia por
// compras de material (gasto tipo "materiales", suma) y por producciones
// (resta); nunca queda negativo tras una operación confirmada.
type Material struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Categoria string  `json:"categoria"`
	Unidad    string  `json:"unidad"` // gramos, metros, unidades, etc.
	Stock     float64 `json:"stock"`
}
