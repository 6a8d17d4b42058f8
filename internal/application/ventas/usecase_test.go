package ventas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acampoh/artesa-api/internal/application/ventas"
	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/repository"
	"github.com/acampoh/artesa-api/internal/infrastructure/jsonstore"
)

func nuevoStoreConProducto(t *testing.T, stock float64) *jsonstore.Store {
	t.Helper()
	store, err := jsonstore.New(t.TempDir())
	require.NoError(t, err)
	err = store.Run(context.Background(), func(cat repository.Catalogo, _ repository.Ledger) error {
		return cat.SaveProductos([]entity.Producto{
			{ID: "prod-1", Nombre: "Billetera", Precio: 1500, Stock: stock},
		})
	})
	require.NoError(t, err)
	return store
}

func libroVentas(t *testing.T, store *jsonstore.Store) ([]entity.Venta, []entity.MovimientoStock, []entity.Producto) {
	t.Helper()
	var vts []entity.Venta
	var movs []entity.MovimientoStock
	var prods []entity.Producto
	err := store.Run(context.Background(), func(cat repository.Catalogo, led repository.Ledger) error {
		var err error
		if vts, err = led.ListVentas(); err != nil {
			return err
		}
		if movs, err = led.ListMovimientos(); err != nil {
			return err
		}
		prods, err = cat.ListProductos()
		return err
	})
	require.NoError(t, err)
	return vts, movs, prods
}

// TestVender_Conservacion: montoTotal == precio * cantidad, el stock baja
// exactamente la cantidad vendida y queda exactamente un movimiento de
// historial con el delta negativo.
func TestVender_Conservacion(t *testing.T) {
	store := nuevoStoreConProducto(t, 10)
	uc := ventas.NewUseCase(store)

	precio := 1200.0
	res, err := uc.Vender(context.Background(), ventas.Input{
		ProductoID:     "prod-1",
		Cantidad:       4,
		PrecioUnitario: &precio,
	})
	require.NoError(t, err)

	assert.Equal(t, 4800.0, res.Venta.MontoTotal)
	assert.Equal(t, 1200.0, res.Venta.PrecioUnitario)
	assert.Equal(t, 6.0, res.Producto.Stock)

	vts, movs, prods := libroVentas(t, store)
	require.Len(t, vts, 1)
	require.Len(t, movs, 1)
	assert.Equal(t, 6.0, prods[0].Stock)

	mov := movs[0]
	assert.Equal(t, entity.MovimientoVenta, mov.TipoMovimiento)
	assert.Equal(t, -4.0, mov.Cantidad)
	assert.Equal(t, 10.0, mov.StockAntes)
	assert.Equal(t, 6.0, mov.StockDespues)
	assert.Equal(t, res.Venta.ID, mov.VentaID)
}

// TestVender_PrecioPorDefecto: sin precioUnitario se usa el precio del
// producto.
func TestVender_PrecioPorDefecto(t *testing.T) {
	store := nuevoStoreConProducto(t, 10)
	uc := ventas.NewUseCase(store)

	res, err := uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-1", Cantidad: 2})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, res.Venta.PrecioUnitario)
	assert.Equal(t, 3000.0, res.Venta.MontoTotal)
}

// TestVender_StockInsuficiente: reporta stock actual y cantidad solicitada y
// no escribe nada.
func TestVender_StockInsuficiente(t *testing.T) {
	store := nuevoStoreConProducto(t, 3)
	uc := ventas.NewUseCase(store)

	_, err := uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-1", Cantidad: 5})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	var detalle *domain.StockProductoError
	require.ErrorAs(t, err, &detalle)
	assert.Equal(t, 3.0, detalle.StockActual)
	assert.Equal(t, 5.0, detalle.CantidadSolicitada)

	vts, movs, prods := libroVentas(t, store)
	assert.Empty(t, vts)
	assert.Empty(t, movs)
	assert.Equal(t, 3.0, prods[0].Stock)
}

// TestVender_Validaciones: producto inexistente, cantidad inválida y precio
// negativo.
func TestVender_Validaciones(t *testing.T) {
	store := nuevoStoreConProducto(t, 10)
	uc := ventas.NewUseCase(store)

	_, err := uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-nope", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-1", Cantidad: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	negativo := -10.0
	_, err = uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-1", Cantidad: 1, PrecioUnitario: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestVender_PrecioCeroEsValido: un precio unitario de 0 (regalo, promoción)
// es aceptado y el total es 0.
func TestVender_PrecioCeroEsValido(t *testing.T) {
	store := nuevoStoreConProducto(t, 10)
	uc := ventas.NewUseCase(store)

	cero := 0.0
	res, err := uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-1", Cantidad: 2, PrecioUnitario: &cero})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Venta.MontoTotal)
	assert.Equal(t, 8.0, res.Producto.Stock)
}

// TestVender_VenderTodoElStock: vender el stock exacto deja cero, nunca
// negativo.
func TestVender_VenderTodoElStock(t *testing.T) {
	store := nuevoStoreConProducto(t, 5)
	uc := ventas.NewUseCase(store)

	res, err := uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-1", Cantidad: 5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Producto.Stock)

	_, err = uc.Vender(context.Background(), ventas.Input{ProductoID: "prod-1", Cantidad: 1})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
