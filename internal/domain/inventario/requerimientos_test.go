package inventario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/inventario"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cálculo puro de requerimientos: escalado por cantidad, detección de
// faltantes y materiales inexistentes en el catálogo.
// ──────────────────────────────────────────────────────────────────────────────

func filasDemo() []entity.Receta {
	return []entity.Receta{
		{ID: "rec-1", ProductoID: "prod-1", MaterialID: "mat-a", Cantidad: 2, TipoProduccion: "unidad"},
		{ID: "rec-2", ProductoID: "prod-1", MaterialID: "mat-b", Cantidad: 5, TipoProduccion: "unidad"},
	}
}

func materialesDemo() []entity.Material {
	return []entity.Material{
		{ID: "mat-a", Nombre: "Hilo encerado", Stock: 100},
		{ID: "mat-b", Nombre: "Cuero curtido", Stock: 100},
	}
}

// TestCalcularRequerimientos_Escalado: filas (2, 5) por cantidad 3 deben
// requerir 6 y 15 respectivamente.
func TestCalcularRequerimientos_Escalado(t *testing.T) {
	reqs, err := inventario.CalcularRequerimientos(filasDemo(), materialesDemo(), 3)
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, "mat-a", reqs[0].MaterialID)
	assert.Equal(t, 6.0, reqs[0].Requerido)
	assert.Equal(t, "Hilo encerado", reqs[0].Nombre)
	assert.Equal(t, 100.0, reqs[0].StockActual)

	assert.Equal(t, "mat-b", reqs[1].MaterialID)
	assert.Equal(t, 15.0, reqs[1].Requerido)
}

// TestCalcularRequerimientos_MaterialInexistente: una fila que referencia un
// material ausente del catálogo es fatal y devuelve RecetaInconsistenteError.
func TestCalcularRequerimientos_MaterialInexistente(t *testing.T) {
	filas := append(filasDemo(), entity.Receta{
		ID: "rec-3", ProductoID: "prod-1", MaterialID: "mat-fantasma", Cantidad: 1,
	})

	_, err := inventario.CalcularRequerimientos(filas, materialesDemo(), 1)
	require.Error(t, err)

	var inconsistente *domain.RecetaInconsistenteError
	require.ErrorAs(t, err, &inconsistente)
	assert.Equal(t, "mat-fantasma", inconsistente.MaterialID)
	assert.Equal(t, "prod-1", inconsistente.ProductoID)
}

// TestFaltantes_DetectaSoloLosInsuficientes: solo los requerimientos que
// superan el stock aparecen en la lista de faltantes, con requerido y stock
// reportados.
func TestFaltantes_DetectaSoloLosInsuficientes(t *testing.T) {
	materiales := []entity.Material{
		{ID: "mat-a", Nombre: "Hilo encerado", Stock: 4},
		{ID: "mat-b", Nombre: "Cuero curtido", Stock: 100},
	}
	filas := []entity.Receta{
		{ID: "rec-1", ProductoID: "prod-1", MaterialID: "mat-a", Cantidad: 10},
		{ID: "rec-2", ProductoID: "prod-1", MaterialID: "mat-b", Cantidad: 1},
	}

	reqs, err := inventario.CalcularRequerimientos(filas, materiales, 1)
	require.NoError(t, err)

	faltan := inventario.Faltantes(reqs)
	require.Len(t, faltan, 1)
	assert.Equal(t, "mat-a", faltan[0].MaterialID)
	assert.Equal(t, 10.0, faltan[0].Requerido)
	assert.Equal(t, 4.0, faltan[0].StockActual)
}

// TestCalcularRequerimientos_FilasDuplicadasSeAgregan: dos filas sobre el
// mismo material se funden en un requerimiento con el consumo sumado, de modo
// que la suficiencia se evalúe contra el mismo total que luego se descuenta.
func TestCalcularRequerimientos_FilasDuplicadasSeAgregan(t *testing.T) {
	materiales := []entity.Material{{ID: "mat-a", Nombre: "Hilo encerado", Stock: 10}}
	filas := []entity.Receta{
		{ID: "rec-1", ProductoID: "prod-1", MaterialID: "mat-a", Cantidad: 6},
		{ID: "rec-2", ProductoID: "prod-1", MaterialID: "mat-a", Cantidad: 6},
	}

	reqs, err := inventario.CalcularRequerimientos(filas, materiales, 1)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, 12.0, reqs[0].Requerido)

	faltan := inventario.Faltantes(reqs)
	require.Len(t, faltan, 1)
	assert.Equal(t, 12.0, faltan[0].Requerido)
	assert.Equal(t, 10.0, faltan[0].StockActual)
}

// TestFaltantes_ConsumoExactoNoEsFaltante: requerido == stock es suficiente.
func TestFaltantes_ConsumoExactoNoEsFaltante(t *testing.T) {
	materiales := []entity.Material{{ID: "mat-a", Nombre: "Hilo", Stock: 6}}
	filas := []entity.Receta{{ID: "rec-1", ProductoID: "prod-1", MaterialID: "mat-a", Cantidad: 2}}

	reqs, err := inventario.CalcularRequerimientos(filas, materiales, 3)
	require.NoError(t, err)
	assert.Empty(t, inventario.Faltantes(reqs))
}

// TestTipoProduccion_PrimeraFilaAutoritativa: la primera fila decide el tipo;
// vacío cae en "unidad".
func TestTipoProduccion_PrimeraFilaAutoritativa(t *testing.T) {
	assert.Equal(t, entity.ProduccionPorUnidad, inventario.TipoProduccion(nil))
	assert.Equal(t, entity.ProduccionPorUnidad, inventario.TipoProduccion([]entity.Receta{{}}))
	assert.Equal(t, entity.ProduccionPorLote, inventario.TipoProduccion([]entity.Receta{
		{TipoProduccion: entity.ProduccionPorLote},
		{TipoProduccion: entity.ProduccionPorUnidad}, // ignorada
	}))
}
