package ventas

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/repository"
)

// UseCase es el motor de ventas: valida stock disponible del producto,
// descuenta, y registra la venta junto a su movimiento de historial en una
// sola transacción.
type UseCase struct {
	store repository.TxRunner
}

// NewUseCase construye el motor.
func NewUseCase(store repository.TxRunner) *UseCase {
	return &UseCase{store: store}
}

// Input parámetros de una venta. PrecioUnitario nil usa el precio actual del
// producto.
type Input struct {
	ProductoID     string
	Cantidad       float64
	PrecioUnitario *float64
}

// Resultado de una venta confirmada.
type Resultado struct {
	Venta    entity.Venta
	Producto entity.Producto
}

// Vender valida (producto existente, cantidad > 0, precio >= 0 si viene,
// stock suficiente) y confirma: descuenta el stock del producto, registra la
// venta y agrega el movimiento de historial con el delta negativo. El chequeo
// de stock ocurre antes de cualquier escritura.
func (uc *UseCase) Vender(ctx context.Context, in Input) (*Resultado, error) {
	var res *Resultado

	err := uc.store.Run(ctx, func(cat repository.Catalogo, led repository.Ledger) error {
		productos, err := cat.ListProductos()
		if err != nil {
			return err
		}
		idx := -1
		for i := range productos {
			if productos[i].ID == in.ProductoID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}

		if math.IsNaN(in.Cantidad) || math.IsInf(in.Cantidad, 0) || in.Cantidad <= 0 {
			return domain.ErrInvalidInput
		}
		precio := productos[idx].Precio
		if in.PrecioUnitario != nil {
			p := *in.PrecioUnitario
			if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
				return domain.ErrInvalidInput
			}
			precio = p
		}

		stockAntes := productos[idx].Stock
		if stockAntes < in.Cantidad {
			return &domain.StockProductoError{
				StockActual:        stockAntes,
				CantidadSolicitada: in.Cantidad,
			}
		}
		stockDespues := stockAntes - in.Cantidad

		// Total en decimal para no arrastrar error binario en montos.
		total := decimal.NewFromFloat(precio).Mul(decimal.NewFromFloat(in.Cantidad))

		productos[idx].Stock = stockDespues
		if err := cat.SaveProductos(productos); err != nil {
			return err
		}

		now := time.Now()
		venta := entity.Venta{
			ID:             "venta-" + uuid.New().String(),
			ProductoID:     in.ProductoID,
			Cantidad:       in.Cantidad,
			PrecioUnitario: precio,
			MontoTotal:     total.InexactFloat64(),
			Fecha:          now,
		}
		if err := led.AppendVenta(venta); err != nil {
			return err
		}

		mov := entity.MovimientoStock{
			ID:             "mov-" + uuid.New().String() + "-venta",
			ProductoID:     in.ProductoID,
			TipoMovimiento: entity.MovimientoVenta,
			Cantidad:       -in.Cantidad,
			StockAntes:     stockAntes,
			StockDespues:   stockDespues,
			VentaID:        venta.ID,
			Fecha:          now,
		}
		if err := led.AppendMovimiento(mov); err != nil {
			return err
		}

		res = &Resultado{Venta: venta, Producto: productos[idx]}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Listar devuelve el libro de ventas.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Venta, error) {
	var out []entity.Venta
	err := uc.store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
		var err error
		out, err = led.ListVentas()
		return err
	})
	return out, err
}

// ListarHistorial devuelve el historial de movimientos de stock.
func (uc *UseCase) ListarHistorial(ctx context.Context) ([]entity.MovimientoStock, error) {
	var out []entity.MovimientoStock
	err := uc.store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
		var err error
		out, err = led.ListMovimientos()
		return err
	})
	return out, err
}
