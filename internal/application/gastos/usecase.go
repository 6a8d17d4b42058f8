package gastos

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/repository"
)

// MotivoMaterialDesconocido es el motivo del modo degradado: el gasto se
// registró pero el materialId no resolvió y el stock quedó sin ajustar.
const MotivoMaterialDesconocido = "material desconocido"

// UseCase es el motor de gastos. Un gasto tipo "materiales" además suma la
// cantidad comprada al stock del material referenciado, en la misma
// transacción. A diferencia de producción y venta, una referencia colgante de
// material aquí no es fatal: el gasto se registra igual y el resultado lo
// reporta como modo degradado (el dato financiero no depende del catálogo).
type UseCase struct {
	store repository.TxRunner
}

// NewUseCase construye el motor.
func NewUseCase(store repository.TxRunner) *UseCase {
	return &UseCase{store: store}
}

// Input parámetros de un gasto. Fecha en cero usa el momento actual.
type Input struct {
	Fecha            time.Time
	Tipo             string
	Categoria        string
	Descripcion      string
	Monto            float64
	Moneda           string
	MedioPago        string
	ProveedorID      string
	FeriaID          string
	MaterialID       string
	Notas            string
	CantidadMaterial float64
}

// Resultado de un gasto registrado.
type Resultado struct {
	Gasto            entity.Gasto
	StockActualizado bool
	Motivo           string
}

// Registrar valida (monto > 0; para tipo "materiales": materialId y cantidad
// comprada > 0 obligatorios) y confirma el gasto. Si el material existe, su
// stock sube exactamente una vez en CantidadMaterial; si no existe, el gasto
// igual se escribe y el resultado queda en modo degradado con su motivo.
func (uc *UseCase) Registrar(ctx context.Context, in Input) (*Resultado, error) {
	if !montoValido(in.Monto) {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.GastoOtro
	}
	if tipo == entity.GastoMateriales {
		if in.MaterialID == "" || !montoValido(in.CantidadMaterial) {
			return nil, domain.ErrInvalidInput
		}
	}

	var res *Resultado
	err := uc.store.Run(ctx, func(cat repository.Catalogo, led repository.Ledger) error {
		fecha := in.Fecha
		if fecha.IsZero() {
			fecha = time.Now()
		}
		gasto := entity.Gasto{
			ID:               "g-" + uuid.New().String(),
			Fecha:            fecha,
			Tipo:             tipo,
			Categoria:        in.Categoria,
			Descripcion:      in.Descripcion,
			Monto:            in.Monto,
			Moneda:           in.Moneda,
			MedioPago:        in.MedioPago,
			ProveedorID:      in.ProveedorID,
			FeriaID:          in.FeriaID,
			MaterialID:       in.MaterialID,
			Notas:            in.Notas,
			CantidadMaterial: in.CantidadMaterial,
		}
		res = &Resultado{StockActualizado: false}

		if tipo == entity.GastoMateriales {
			if gasto.Categoria == "" {
				gasto.Categoria = entity.GastoMateriales
			}
			materiales, err := cat.ListMateriales()
			if err != nil {
				return err
			}
			idx := -1
			for i := range materiales {
				if materiales[i].ID == in.MaterialID {
					idx = i
					break
				}
			}
			if idx >= 0 {
				if gasto.Descripcion == "" {
					gasto.Descripcion = "Compra de material: " + materiales[idx].Nombre
				}
				materiales[idx].Stock += in.CantidadMaterial
				if err := cat.SaveMateriales(materiales); err != nil {
					return err
				}
				res.StockActualizado = true
			} else {
				// Referencia colgante: solo afecta texto cosmético y el
				// ajuste de stock, nunca el registro financiero.
				log.Warn().
					Str("materialId", in.MaterialID).
					Msg("gasto de materiales con material inexistente; stock sin ajustar")
				if gasto.Descripcion == "" {
					gasto.Descripcion = "Compra de materiales"
				}
				res.Motivo = MotivoMaterialDesconocido
			}
		}

		if err := led.AppendGasto(gasto); err != nil {
			return err
		}
		res.Gasto = gasto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Actualizar reescribe los campos de un gasto existente. Nunca reajusta stock,
// aunque cambien materialId o cantidadMaterial (decisión de producto: la
// compra ya impactó el inventario una sola vez).
func (uc *UseCase) Actualizar(ctx context.Context, id string, in Input) (*entity.Gasto, error) {
	if !montoValido(in.Monto) {
		return nil, domain.ErrInvalidInput
	}
	var actualizado *entity.Gasto
	err := uc.store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
		todos, err := led.ListGastos()
		if err != nil {
			return err
		}
		for i := range todos {
			if todos[i].ID != id {
				continue
			}
			g := &todos[i]
			if !in.Fecha.IsZero() {
				g.Fecha = in.Fecha
			}
			if in.Tipo != "" {
				g.Tipo = in.Tipo
			}
			g.Categoria = in.Categoria
			g.Descripcion = in.Descripcion
			g.Monto = in.Monto
			g.Moneda = in.Moneda
			g.MedioPago = in.MedioPago
			g.ProveedorID = in.ProveedorID
			g.FeriaID = in.FeriaID
			g.MaterialID = in.MaterialID
			g.Notas = in.Notas
			g.CantidadMaterial = in.CantidadMaterial
			actualizado = g
			return led.SaveGastos(todos)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return actualizado, nil
}

// Eliminar borra un gasto. El stock del material no se revierte.
func (uc *UseCase) Eliminar(ctx context.Context, id string) error {
	return uc.store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
		todos, err := led.ListGastos()
		if err != nil {
			return err
		}
		for i := range todos {
			if todos[i].ID == id {
				return led.SaveGastos(append(todos[:i], todos[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}

// Listar devuelve el libro de gastos.
func (uc *UseCase) Listar(ctx context.Context) ([]entity.Gasto, error) {
	var out []entity.Gasto
	err := uc.store.Run(ctx, func(_ repository.Catalogo, led repository.Ledger) error {
		var err error
		out, err = led.ListGastos()
		return err
	})
	return out, err
}

func montoValido(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0) && n > 0
}
