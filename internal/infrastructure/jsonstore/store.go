package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/acampoh/artesa-api/internal/domain/repository"
)

// Archivos de colección dentro del directorio de datos. Cada uno es un array
// JSON plano compartido con los demás consumidores de los datos (frontend).
const (
	archMateriales   = "materiales.json"
	archProductos    = "productos.json"
	archRecetas      = "recetas.json"
	archProveedores  = "proveedores.json"
	archFerias       = "ferias.json"
	archModelos      = "modelos.json"
	archProducciones = "producciones.json"
	archVentas       = "ventas.json"
	archGastos       = "gastos.json"
	archHistorial    = "historial-stock.json"
)

var _ repository.TxRunner = (*Store)(nil)

// Store persiste cada colección como un archivo JSON plano bajo dir.
// Un mutex de escritor único serializa todas las transacciones: el patrón
// lectura-modificación-escritura sobre archivo completo no tolera requests
// simultáneos sin serializar.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New crea el almacén, creando el directorio de datos si no existe.
// Archivos ausentes se tratan como colecciones vacías.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("jsonstore: directorio de datos vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Run ejecuta fn dentro de una transacción. Las colecciones se cargan de forma
// perezosa; las escrituras quedan en memoria y se confirman solo si fn
// devuelve nil. La confirmación escribe primero todos los archivos temporales
// y recién después renombra cada uno sobre su destino, para no dejar nunca un
// decremento de materiales sin su incremento de producto pareado.
func (s *Store) Run(ctx context.Context, fn func(cat repository.Catalogo, led repository.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := newTx(s.dir)
	if err := fn(t, t); err != nil {
		return err
	}
	return t.commit()
}

// leerColeccion carga un array JSON; archivo inexistente equivale a colección vacía.
func leerColeccion[T any](ruta string) ([]T, error) {
	data, err := os.ReadFile(ruta)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", filepath.Base(ruta), err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", filepath.Base(ruta), err)
	}
	return items, nil
}

// escribirTemp serializa items a un archivo temporal en el mismo directorio
// que ruta (mismo filesystem, para que el rename posterior sea atómico).
func escribirTemp[T any](ruta string, items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializar %s: %w", filepath.Base(ruta), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(ruta), filepath.Base(ruta)+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("crear temporal para %s: %w", filepath.Base(ruta), err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("escribir temporal de %s: %w", filepath.Base(ruta), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("cerrar temporal de %s: %w", filepath.Base(ruta), err)
	}
	return tmp.Name(), nil
}
