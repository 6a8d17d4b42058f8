package entity

// Proveedor de materiales o productos tercerizados.
type Proveedor struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
	Notas    string `json:"notas,omitempty"`
}
