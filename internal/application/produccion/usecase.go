package produccion

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/inventario"
	"github.com/acampoh/artesa-api/internal/domain/repository"
)

// UseCase es el motor de producción: resuelve la receta del producto, calcula
// el requerimiento total de materiales, valida suficiencia y recién entonces
// confirma en una sola transacción el descuento de cada material, el aumento
// de stock del producto y el registro de auditoría. Todo o nada: cualquier
// fallo de validación ocurre antes de la primera escritura.
type UseCase struct {
	store repository.TxRunner
}

// NewUseCase construye el motor.
func NewUseCase(store repository.TxRunner) *UseCase {
	return &UseCase{store: store}
}

// Input parámetros de una producción. UnidadesBuenas desacopla el rendimiento
// del factor de consumo: los materiales siempre escalan por Cantidad (unidades
// o lotes según la receta); el stock del producto sube en UnidadesBuenas, que
// en nil vale Cantidad. Acepta cero para registrar un lote totalmente fallido.
type Input struct {
	ProductoID     string
	Cantidad       float64
	UnidadesBuenas *float64
	ModeloID       string
}

// Resultado de una producción confirmada.
type Resultado struct {
	Produccion entity.Produccion
	Producto   entity.Producto
}

// Producir ejecuta la secuencia validar-luego-confirmar del motor.
//
// Orden de validación (el primer fallo gana):
//  1. el producto debe existir (ErrNotFound)
//  2. la cantidad debe ser finita y > 0 (ErrInvalidInput)
//  3. el producto debe tener receta (ErrSinReceta)
//
// Después, un material de la receta ausente del catálogo aborta con
// RecetaInconsistenteError, y cualquier faltante de stock con
// StockMaterialesError listando todos los faltantes. En ambos casos no se
// escribe nada.
func (uc *UseCase) Producir(ctx context.Context, in Input) (*Resultado, error) {
	var res *Resultado

	err := uc.store.Run(ctx, func(cat repository.Catalogo, led repository.Ledger) error {
		productos, err := cat.ListProductos()
		if err != nil {
			return err
		}
		idx := indiceProducto(productos, in.ProductoID)
		if idx < 0 {
			return domain.ErrNotFound
		}

		if !cantidadValida(in.Cantidad) {
			return domain.ErrInvalidInput
		}
		rendimiento := in.Cantidad
		if in.UnidadesBuenas != nil {
			// cero es válido: un lote totalmente fallido consume materiales
			// sin aportar stock, y aun así debe quedar registrado
			if !rendimientoValido(*in.UnidadesBuenas) {
				return domain.ErrInvalidInput
			}
			rendimiento = *in.UnidadesBuenas
		}

		recetas, err := cat.ListRecetas()
		if err != nil {
			return err
		}
		filas := filasDeProducto(recetas, in.ProductoID)
		if len(filas) == 0 {
			return domain.ErrSinReceta
		}

		materiales, err := cat.ListMateriales()
		if err != nil {
			return err
		}
		reqs, err := inventario.CalcularRequerimientos(filas, materiales, in.Cantidad)
		if err != nil {
			return err
		}
		if faltan := inventario.Faltantes(reqs); len(faltan) > 0 {
			return &domain.StockMaterialesError{Faltantes: faltan}
		}

		// Confirmación: descuenta cada material, suma el rendimiento al
		// producto y deja el registro de auditoría, todo en la misma
		// transacción del almacén.
		usados := make([]entity.MaterialUsado, 0, len(reqs))
		porID := make(map[string]float64, len(reqs))
		for _, r := range reqs {
			usados = append(usados, entity.MaterialUsado{MaterialID: r.MaterialID, Cantidad: r.Requerido})
			porID[r.MaterialID] += r.Requerido
		}
		for i := range materiales {
			if consumo, ok := porID[materiales[i].ID]; ok {
				materiales[i].Stock -= consumo
			}
		}
		productos[idx].Stock += rendimiento

		if err := cat.SaveMateriales(materiales); err != nil {
			return err
		}
		if err := cat.SaveProductos(productos); err != nil {
			return err
		}

		prod := entity.Produccion{
			ID:               "prodop-" + uuid.New().String(),
			ProductoID:       in.ProductoID,
			ModeloID:         in.ModeloID,
			Cantidad:         in.Cantidad,
			UnidadesBuenas:   rendimiento,
			TipoProduccion:   inventario.TipoProduccion(filas),
			Fecha:            time.Now(),
			MaterialesUsados: usados,
		}
		if err := led.AppendProduccion(prod); err != nil {
			return err
		}

		res = &Resultado{Produccion: prod, Producto: productos[idx]}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Listar devuelve el libro de producciones.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Produccion, error) {
	var out []entity.Produccion
	err := uc.store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
		var err error
		out, err = led.ListProducciones()
		return err
	})
	return out, err
}

func cantidadValida(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n > 0
}

func rendimientoValido(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n >= 0
}

func indiceProducto(productos []entity.Producto, id string) int {
	for i := range productos {
		if productos[i].ID == id {
			return i
		}
	}
	return -1
}

func filasDeProducto(recetas []entity.Receta, productoID string) []entity.Receta {
	var filas []entity.Receta
	for _, r := range recetas {
		if r.ProductoID == productoID {
			filas = append(filas, r)
		}
	}
	return filas
}
