package jsonstore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/repository"
	"github.com/acampoh/artesa-api/internal/infrastructure/jsonstore"
)

// TestRun_ArchivosAusentesSonColeccionesVacias: un directorio recién creado se
// lee como colecciones vacías, sin error.
func TestRun_ArchivosAusentesSonColeccionesVacias(t *testing.T) {
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	err = store.Run(context.Background(), func(cat repository.Catalogo, led repository.Ledger) error {
		materiales, err := cat.ListMateriales()
		require.NoError(t, err)
		assert.Empty(t, materiales)

		ventas, err := led.ListVentas()
		require.NoError(t, err)
		assert.Empty(t, ventas)
		return nil
	})
	require.NoError(t, err)
}

// TestRun_PersisteEntreAperturas: lo confirmado por un Store es visible para
// otro Store abierto sobre el mismo directorio (durabilidad en disco).
func TestRun_PersisteEntreAperturas(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store1, err := jsonstore.New(dir)
	require.NoError(t, err)
	err = store1.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		return cat.SaveMateriales([]entity.Material{{ID: "mat-1", Nombre: "Lana", Stock: 12}})
	})
	require.NoError(t, err)

	store2, err := jsonstore.New(dir)
	require.NoError(t, err)
	err = store2.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		materiales, err := cat.ListMateriales()
		require.NoError(t, err)
		require.Len(t, materiales, 1)
		assert.Equal(t, "Lana", materiales[0].Nombre)
		assert.Equal(t, 12.0, materiales[0].Stock)
		return nil
	})
	require.NoError(t, err)
}

// TestRun_ErrorDescartaEscrituras: si fn devuelve error, ninguna colección
// tocada llega al disco (todo o nada a nivel de archivos).
func TestRun_ErrorDescartaEscrituras(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store, err := jsonstore.New(dir)
	require.NoError(t, err)

	err = store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		return cat.SaveMateriales([]entity.Material{{ID: "mat-1", Nombre: "Lana", Stock: 5}})
	})
	require.NoError(t, err)
	antes, err := os.ReadFile(filepath.Join(dir, "materiales.json"))
	require.NoError(t, err)

	fallo := errors.New("fallo de negocio")
	err = store.Run(ctx, func(cat repository.Catalogo, led repository.Ledger) error {
		materiales, err := cat.ListMateriales()
		require.NoError(t, err)
		materiales[0].Stock = 9999
		require.NoError(t, cat.SaveMateriales(materiales))
		require.NoError(t, led.AppendVenta(entity.Venta{ID: "venta-x"}))
		return fallo
	})
	require.ErrorIs(t, err, fallo)

	despues, err := os.ReadFile(filepath.Join(dir, "materiales.json"))
	require.NoError(t, err)
	assert.Equal(t, antes, despues, "el archivo debe quedar byte a byte igual")
	assert.NoFileExists(t, filepath.Join(dir, "ventas.json"))
}

// TestRun_AppendConservaLoExistente: agregar a un libro conserva los
// registros previos.
func TestRun_AppendConservaLoExistente(t *testing.T) {
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, id := range []string{"venta-1", "venta-2", "venta-3"} {
		err := store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
			return led.AppendVenta(entity.Venta{ID: id})
		})
		require.NoError(t, err)
	}

	err = store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
		ventas, err := led.ListVentas()
		require.NoError(t, err)
		require.Len(t, ventas, 3)
		assert.Equal(t, "venta-1", ventas[0].ID)
		assert.Equal(t, "venta-3", ventas[2].ID)
		return nil
	})
	require.NoError(t, err)
}

// TestRun_SinTemporalesHuerfanos: tras confirmar y tras abortar no quedan
// archivos temporales en el directorio de datos.
func TestRun_SinTemporalesHuerfanos(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store, err := jsonstore.New(dir)
	require.NoError(t, err)

	require.NoError(t, store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		return cat.SaveMateriales([]entity.Material{{ID: "mat-1"}})
	}))

	entradas, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entradas {
		assert.NotContains(t, e.Name(), ".tmp-", "temporal huérfano: %s", e.Name())
	}
}

// TestRun_ContextoCancelado: un contexto ya cancelado no ejecuta fn.
func TestRun_ContextoCancelado(t *testing.T) {
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ejecutado := false
	err = store.Run(ctx, func(_ repository.Catalogo, _ repository.Ledger) error {
		ejecutado = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, ejecutado)
}

// TestNew_DirectorioVacioEsError: la configuración debe traer un directorio.
func TestNew_DirectorioVacioEsError(t *testing.T) {
	_, err := jsonstore.New("")
	assert.Error(t, err)
}
