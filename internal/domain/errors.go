package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrSinReceta         = errors.New("el producto no tiene receta definida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// FaltanteStock detalla un material cuyo stock no alcanza para una producción.
type FaltanteStock struct {
	MaterialID  string  `json:"materialId"`
	Nombre      string  `json:"nombreMaterial"`
	Requerido   float64 `json:"requerido"`
	StockActual float64 `json:"stockActual"`
}

// StockMaterialesError lista todos los materiales faltantes de una producción.
// errors.Is(err, ErrInsufficientStock) devuelve true.
type StockMaterialesError struct {
	Faltantes []FaltanteStock
}

func (e *StockMaterialesError) Error() string {
	return fmt.Sprintf("stock insuficiente en %d material(es)", len(e.Faltantes))
}

func (e *StockMaterialesError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// StockProductoError indica que el stock del producto no alcanza para una venta.
type StockProductoError struct {
	StockActual        float64 `json:"stockActual"`
	CantidadSolicitada float64 `json:"cantidadSolicitada"`
}

func (e *StockProductoError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %v, solicitado %v", e.StockActual, e.CantidadSolicitada)
}

func (e *StockProductoError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// RecetaInconsistenteError indica que una receta referencia un material que ya
// no existe en el catálogo. Es fatal y no reintentable, pero distinguible de un
// fallo de infraestructura.
type RecetaInconsistenteError struct {
	ProductoID string
	MaterialID string
}

func (e *RecetaInconsistenteError) Error() string {
	return fmt.Sprintf("receta inconsistente: material %s no existe (producto %s)", e.MaterialID, e.ProductoID)
}
