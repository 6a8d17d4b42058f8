package dto

// Requests de CRUD del catálogo. Los campos puntero en los Update permiten
// actualización parcial (nil = sin cambio). El stock no es editable por CRUD:
// solo los motores de producción, venta y gasto lo mutan.

// CreateMaterialRequest alta de material; StockInicial permite cargar el
// inventario existente al crear.
type CreateMaterialRequest struct {
	Nombre       string  `json:"nombre"`
	Categoria    string  `json:"categoria,omitempty"`
	Unidad       string  `json:"unidad,omitempty"`
	StockInicial float64 `json:"stockInicial,omitempty"`
}

// UpdateMaterialRequest edición parcial de material (sin stock).
type UpdateMaterialRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Categoria *string `json:"categoria,omitempty"`
	Unidad    *string `json:"unidad,omitempty"`
}

// CreateProductoRequest alta de producto.
type CreateProductoRequest struct {
	Nombre       string  `json:"nombre"`
	Categoria    string  `json:"categoria,omitempty"`
	Precio       float64 `json:"precio"`
	Unidad       string  `json:"unidad,omitempty"`
	StockInicial float64 `json:"stockInicial,omitempty"`
	ProveedorID  string  `json:"proveedorId,omitempty"`
}

// UpdateProductoRequest edición parcial de producto (sin stock).
type UpdateProductoRequest struct {
	Nombre      *string  `json:"nombre,omitempty"`
	Categoria   *string  `json:"categoria,omitempty"`
	Precio      *float64 `json:"precio,omitempty"`
	Unidad      *string  `json:"unidad,omitempty"`
	ProveedorID *string  `json:"proveedorId,omitempty"`
}

// CreateRecetaRequest alta de una fila de receta.
type CreateRecetaRequest struct {
	ProductoID     string  `json:"productoId"`
	MaterialID     string  `json:"materialId"`
	Cantidad       float64 `json:"cantidad"`
	Unidad         string  `json:"unidad,omitempty"`
	TipoProduccion string  `json:"tipoProduccion,omitempty"`
}

// UpdateRecetaRequest edición parcial de una fila de receta.
type UpdateRecetaRequest struct {
	Cantidad       *float64 `json:"cantidad,omitempty"`
	Unidad         *string  `json:"unidad,omitempty"`
	TipoProduccion *string  `json:"tipoProduccion,omitempty"`
}

// CreateProveedorRequest alta de proveedor.
type CreateProveedorRequest struct {
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto,omitempty"`
	Telefono string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty"`
	Notas    string `json:"notas,omitempty"`
}

// UpdateProveedorRequest edición parcial de proveedor.
type UpdateProveedorRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Contacto *string `json:"contacto,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Email    *string `json:"email,omitempty"`
	Notas    *string `json:"notas,omitempty"`
}

// CreateFeriaRequest alta de feria.
type CreateFeriaRequest struct {
	Nombre      string  `json:"nombre"`
	Lugar       string  `json:"lugar,omitempty"`
	FechaInicio string  `json:"fechaInicio,omitempty"` // RFC 3339
	FechaFin    string  `json:"fechaFin,omitempty"`
	CostoPuesto float64 `json:"costoPuesto,omitempty"`
	Notas       string  `json:"notas,omitempty"`
}

// UpdateFeriaRequest edición parcial de feria.
type UpdateFeriaRequest struct {
	Nombre      *string  `json:"nombre,omitempty"`
	Lugar       *string  `json:"lugar,omitempty"`
	FechaInicio *string  `json:"fechaInicio,omitempty"`
	FechaFin    *string  `json:"fechaFin,omitempty"`
	CostoPuesto *float64 `json:"costoPuesto,omitempty"`
	Notas       *string  `json:"notas,omitempty"`
}

// CreateModeloRequest alta de modelo.
type CreateModeloRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	ProductoID  string `json:"productoId,omitempty"`
}

// UpdateModeloRequest edición parcial de modelo.
type UpdateModeloRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Descripcion *string `json:"descripcion,omitempty"`
	ProductoID  *string `json:"productoId,omitempty"`
}
