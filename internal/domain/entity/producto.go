package entity

// Producto es un artículo vendible fabricado a partir de materiales según su
// receta. El stock solo cambia por producciones (suma) y ventas (resta).
type Producto struct {
	ID          string  `json:"id"`
	Nombre      string  `json:"nombre"`
	Categoria   string  `json:"categoria"`
	Precio      float64 `json:"precio"` // precio de venta por unidad
	Unidad      string  `json:"unidad"`
	Stock       float64 `json:"stock"`
	ProveedorID string  `json:"proveedorId,omitempty"`
}
