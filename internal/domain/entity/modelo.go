package entity

// Modelo es una variante o diseño de un producto; las producciones pueden
// etiquetarse con el modelo fabricado.
type Modelo struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	ProductoID  string `json:"productoId,omitempty"`
}
