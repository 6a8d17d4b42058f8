package inventario

import (
	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
)

// Requerimiento es el consumo calculado de un material para una producción,
// junto al stock disponible al momento del cálculo.
type Requerimiento struct {
	MaterialID  string
	Nombre      string
	Requerido   float64
	StockActual float64
}

// TipoProduccion devuelve el tipo de producción autoritativo de un conjunto de
// filas de receta: el de la primera fila, o "unidad" si está vacío.
func TipoProduccion(filas []entity.Receta) string {
	if len(filas) == 0 || filas[0].TipoProduccion == "" {
		return entity.ProduccionPorUnidad
	}
	return filas[0].TipoProduccion
}

// CalcularRequerimientos escala cada fila de receta por la cantidad a producir
// (Requerido = fila.Cantidad * cantidad) y resuelve cada material contra el
// catálogo. Filas que repiten material se agregan en un único requerimiento:
// la suficiencia y el descuento deben mirar el mismo total por material. Un
// material inexistente devuelve RecetaInconsistenteError: la operación
// completa debe abortarse sin escribir nada.
func CalcularRequerimientos(filas []entity.Receta, materiales []entity.Material, cantidad float64) ([]Requerimiento, error) {
	porID := make(map[string]entity.Material, len(materiales))
	for _, m := range materiales {
		porID[m.ID] = m
	}

	reqs := make([]Requerimiento, 0, len(filas))
	indice := make(map[string]int, len(filas))
	for _, fila := range filas {
		mat, ok := porID[fila.MaterialID]
		if !ok {
			return nil, &domain.RecetaInconsistenteError{
				ProductoID: fila.ProductoID,
				MaterialID: fila.MaterialID,
			}
		}
		if i, visto := indice[mat.ID]; visto {
			reqs[i].Requerido += fila.Cantidad * cantidad
			continue
		}
		indice[mat.ID] = len(reqs)
		reqs = append(reqs, Requerimiento{
			MaterialID:  mat.ID,
			Nombre:      mat.Nombre,
			Requerido:   fila.Cantidad * cantidad,
			StockActual: mat.Stock,
		})
	}
	return reqs, nil
}

// Faltantes filtra los requerimientos cuyo consumo supera el stock disponible.
// Si la lista resultante no está vacía la producción no puede confirmarse.
func Faltantes(reqs []Requerimiento) []domain.FaltanteStock {
	var faltan []domain.FaltanteStock
	for _, r := range reqs {
		if r.Requerido > r.StockActual {
			faltan = append(faltan, domain.FaltanteStock{
				MaterialID:  r.MaterialID,
				Nombre:      r.Nombre,
				Requerido:   r.Requerido,
				StockActual: r.StockActual,
			})
		}
	}
	return faltan
}
