package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/repository"
)

var (
	_ repository.Catalogo = (*tx)(nil)
	_ repository.Ledger   = (*tx)(nil)
)

// coleccion es el estado en memoria de un archivo de colección dentro de una
// transacción: carga perezosa y marca de sucio para saber qué confirmar.
type coleccion[T any] struct {
	ruta    string
	cargada bool
	sucia   bool
	items   []T
}

func (c *coleccion[T]) lista() ([]T, error) {
	if !c.cargada {
		items, err := leerColeccion[T](c.ruta)
		if err != nil {
			return nil, err
		}
		c.items = items
		c.cargada = true
	}
	return c.items, nil
}

func (c *coleccion[T]) reemplaza(items []T) {
	c.items = items
	c.cargada = true
	c.sucia = true
}

func (c *coleccion[T]) agrega(item T) error {
	items, err := c.lista()
	if err != nil {
		return err
	}
	c.reemplaza(append(items, item))
	return nil
}

// prepara escribe la colección sucia a un archivo temporal y devuelve
// (temporal, destino, sucia).
func (c *coleccion[T]) prepara() (string, string, bool, error) {
	if !c.sucia {
		return "", "", false, nil
	}
	tmp, err := escribirTemp(c.ruta, c.items)
	if err != nil {
		return "", "", false, err
	}
	return tmp, c.ruta, true, nil
}

// tx implementa repository.Catalogo y repository.Ledger sobre los archivos de
// un directorio de datos, con confirmación diferida.
type tx struct {
	materiales   coleccion[entity.Material]
	productos    coleccion[entity.Producto]
	recetas      coleccion[entity.Receta]
	proveedores  coleccion[entity.Proveedor]
	ferias       coleccion[entity.Feria]
	modelos      coleccion[entity.Modelo]
	producciones coleccion[entity.Produccion]
	ventas       coleccion[entity.Venta]
	gastos       coleccion[entity.Gasto]
	movimientos  coleccion[entity.MovimientoStock]
}

func newTx(dir string) *tx {
	return &tx{
		materiales:   coleccion[entity.Material]{ruta: filepath.Join(dir, archMateriales)},
		productos:    coleccion[entity.Producto]{ruta: filepath.Join(dir, archProductos)},
		recetas:      coleccion[entity.Receta]{ruta: filepath.Join(dir, archRecetas)},
		proveedores:  coleccion[entity.Proveedor]{ruta: filepath.Join(dir, archProveedores)},
		ferias:       coleccion[entity.Feria]{ruta: filepath.Join(dir, archFerias)},
		modelos:      coleccion[entity.Modelo]{ruta: filepath.Join(dir, archModelos)},
		producciones: coleccion[entity.Produccion]{ruta: filepath.Join(dir, archProducciones)},
		ventas:       coleccion[entity.Venta]{ruta: filepath.Join(dir, archVentas)},
		gastos:       coleccion[entity.Gasto]{ruta: filepath.Join(dir, archGastos)},
		movimientos:  coleccion[entity.MovimientoStock]{ruta: filepath.Join(dir, archHistorial)},
	}
}

// commit confirma todas las colecciones sucias: primero escribe cada temporal
// y solo si todos se escribieron renombra uno a uno sobre su destino. Un fallo
// durante la fase de temporales no toca ningún archivo real.
func (t *tx) commit() error {
	type renombre struct {
		tmp, destino string
	}
	preparadores := []func() (string, string, bool, error){
		t.materiales.prepara,
		t.productos.prepara,
		t.recetas.prepara,
		t.proveedores.prepara,
		t.ferias.prepara,
		t.modelos.prepara,
		t.producciones.prepara,
		t.ventas.prepara,
		t.gastos.prepara,
		t.movimientos.prepara,
	}
	var listos []renombre
	for _, prepara := range preparadores {
		tmp, destino, sucia, err := prepara()
		if err != nil {
			for _, r := range listos {
				os.Remove(r.tmp)
			}
			return err
		}
		if sucia {
			listos = append(listos, renombre{tmp: tmp, destino: destino})
		}
	}
	for _, r := range listos {
		if err := os.Rename(r.tmp, r.destino); err != nil {
			return fmt.Errorf("confirmar %s: %w", filepath.Base(r.destino), err)
		}
	}
	return nil
}

// ── repository.Catalogo ───────────────────────────────────────────────────────

func (t *tx) ListMateriales() ([]entity.Material, error) { return t.materiales.lista() }
func (t *tx) SaveMateriales(m []entity.Material) error   { t.materiales.reemplaza(m); return nil }

func (t *tx) ListProductos() ([]entity.Producto, error) { return t.productos.lista() }
func (t *tx) SaveProductos(p []entity.Producto) error   { t.productos.reemplaza(p); return nil }

func (t *tx) ListRecetas() ([]entity.Receta, error) { return t.recetas.lista() }
func (t *tx) SaveRecetas(r []entity.Receta) error   { t.recetas.reemplaza(r); return nil }

func (t *tx) ListProveedores() ([]entity.Proveedor, error) { return t.proveedores.lista() }
func (t *tx) SaveProveedores(p []entity.Proveedor) error   { t.proveedores.reemplaza(p); return nil }

func (t *tx) ListFerias() ([]entity.Feria, error) { return t.ferias.lista() }
func (t *tx) SaveFerias(f []entity.Feria) error   { t.ferias.reemplaza(f); return nil }

func (t *tx) ListModelos() ([]entity.Modelo, error) { return t.modelos.lista() }
func (t *tx) SaveModelos(m []entity.Modelo) error   { t.modelos.reemplaza(m); return nil }

// ── repository.Ledger ─────────────────────────────────────────────────────────

func (t *tx) ListProducciones() ([]entity.Produccion, error) { return t.producciones.lista() }
func (t *tx) AppendProduccion(p entity.Produccion) error     { return t.producciones.agrega(p) }

func (t *tx) ListVentas() ([]entity.Venta, error) { return t.ventas.lista() }
func (t *tx) AppendVenta(v entity.Venta) error    { return t.ventas.agrega(v) }

func (t *tx) ListGastos() ([]entity.Gasto, error) { return t.gastos.lista() }
func (t *tx) AppendGasto(g entity.Gasto) error    { return t.gastos.agrega(g) }
func (t *tx) SaveGastos(g []entity.Gasto) error   { t.gastos.reemplaza(g); return nil }

func (t *tx) ListMovimientos() ([]entity.MovimientoStock, error) { return t.movimientos.lista() }
func (t *tx) AppendMovimiento(m entity.MovimientoStock) error    { return t.movimientos.agrega(m) }
