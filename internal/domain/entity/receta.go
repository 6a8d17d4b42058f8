package entity

// Tipos de producción de una receta.
const (
	ProduccionPorUnidad = "unidad" // la cantidad producida es el factor de consumo
	ProduccionPorLote   = "lote"   // el factor de consumo es el número de lotes procesados
)

// Receta es una fila de la lista de materiales de un producto: cuánto de un
// material se consume por unidad producida (o por lote, según TipoProduccion).
// Todas las filas de un mismo producto comparten TipoProduccion; la primera
// fila es la autoritativa.
type Receta struct {
	ID             string  `json:"id"`
	ProductoID     string  `json:"productoId"`
	MaterialID     string  `json:"materialId"`
	Cantidad       float64 `json:"cantidad"` // consumo por unidad del factor de producción
	Unidad         string  `json:"unidad"`
	TipoProduccion string  `json:"tipoProduccion"`
}
