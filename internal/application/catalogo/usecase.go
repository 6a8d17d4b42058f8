package catalogo

import (
	"context"

	"github.com/google/uuid"

	"github.com/acampoh/artesa-api/internal/application/dto"
	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/repository"
)

// UseCase casos de uso CRUD del catálogo (materiales, productos, recetas y
// entidades de soporte). Son los colaboradores no-core de los motores: crean y
// editan fichas, pero jamás tocan los campos de stock — eso es exclusivo de
// los motores de producción, venta y gasto.
type UseCase struct {
	store repository.TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.TxRunner) *UseCase {
	return &UseCase{store: store}
}

// ── Materiales ────────────────────────────────────────────────────────────────

// ListMateriales lista todos los materiales.
func (uc *UseCase) ListMateriales(ctx context.Context) ([]entity.Material, error) {
	var out []entity.Material
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		var err error
		out, err = cat.ListMateriales()
		return err
	})
	return out, err
}

// GetMaterial obtiene un material por ID.
func (uc *UseCase) GetMaterial(ctx context.Context, id string) (*entity.Material, error) {
	var out *entity.Material
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		materiales, err := cat.ListMateriales()
		if err != nil {
			return err
		}
		for i := range materiales {
			if materiales[i].ID == id {
				out = &materiales[i]
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMaterial da de alta un material; StockInicial permite cargar el
// inventario preexistente.
func (uc *UseCase) CreateMaterial(ctx context.Context, in dto.CreateMaterialRequest) (*entity.Material, error) {
	if in.Nombre == "" || in.StockInicial < 0 {
		return nil, domain.ErrInvalidInput
	}
	m := entity.Material{
		ID:        "mat-" + uuid.New().String(),
		Nombre:    in.Nombre,
		Categoria: in.Categoria,
		Unidad:    in.Unidad,
		Stock:     in.StockInicial,
	}
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		materiales, err := cat.ListMateriales()
		if err != nil {
			return err
		}
		return cat.SaveMateriales(append(materiales, m))
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMaterial edita la ficha de un material. El stock no es editable.
func (uc *UseCase) UpdateMaterial(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*entity.Material, error) {
	var out *entity.Material
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		materiales, err := cat.ListMateriales()
		if err != nil {
			return err
		}
		for i := range materiales {
			if materiales[i].ID != id {
				continue
			}
			if in.Nombre != nil {
				materiales[i].Nombre = *in.Nombre
			}
			if in.Categoria != nil {
				materiales[i].Categoria = *in.Categoria
			}
			if in.Unidad != nil {
				materiales[i].Unidad = *in.Unidad
			}
			out = &materiales[i]
			return cat.SaveMateriales(materiales)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteMaterial borra un material. Las recetas que lo referencien quedan
// inconsistentes y el motor de producción lo reporta como tal.
func (uc *UseCase) DeleteMaterial(ctx context.Context, id string) error {
	return uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		materiales, err := cat.ListMateriales()
		if err != nil {
			return err
		}
		for i := range materiales {
			if materiales[i].ID == id {
				return cat.SaveMateriales(append(materiales[:i], materiales[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ListProductos lista todos los productos.
func (uc *UseCase) ListProductos(ctx context.Context) ([]entity.Producto, error) {
	var out []entity.Producto
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		var err error
		out, err = cat.ListProductos()
		return err
	})
	return out, err
}

// GetProducto obtiene un producto por ID.
func (uc *UseCase) GetProducto(ctx context.Context, id string) (*entity.Producto, error) {
	var out *entity.Producto
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		productos, err := cat.ListProductos()
		if err != nil {
			return err
		}
		for i := range productos {
			if productos[i].ID == id {
				out = &productos[i]
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProducto da de alta un producto.
func (uc *UseCase) CreateProducto(ctx context.Context, in dto.CreateProductoRequest) (*entity.Producto, error) {
	if in.Nombre == "" || in.Precio < 0 || in.StockInicial < 0 {
		return nil, domain.ErrInvalidInput
	}
	p := entity.Producto{
		ID:          "prod-" + uuid.New().String(),
		Nombre:      in.Nombre,
		Categoria:   in.Categoria,
		Precio:      in.Precio,
		Unidad:      in.Unidad,
		Stock:       in.StockInicial,
		ProveedorID: in.ProveedorID,
	}
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		productos, err := cat.ListProductos()
		if err != nil {
			return err
		}
		return cat.SaveProductos(append(productos, p))
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProducto edita la ficha de un producto. El stock no es editable.
func (uc *UseCase) UpdateProducto(ctx context.Context, id string, in dto.UpdateProductoRequest) (*entity.Producto, error) {
	if in.Precio != nil && *in.Precio < 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Producto
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		productos, err := cat.ListProductos()
		if err != nil {
			return err
		}
		for i := range productos {
			if productos[i].ID != id {
				continue
			}
			if in.Nombre != nil {
				productos[i].Nombre = *in.Nombre
			}
			if in.Categoria != nil {
				productos[i].Categoria = *in.Categoria
			}
			if in.Precio != nil {
				productos[i].Precio = *in.Precio
			}
			if in.Unidad != nil {
				productos[i].Unidad = *in.Unidad
			}
			if in.ProveedorID != nil {
				productos[i].ProveedorID = *in.ProveedorID
			}
			out = &productos[i]
			return cat.SaveProductos(productos)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProducto borra un producto.
func (uc *UseCase) DeleteProducto(ctx context.Context, id string) error {
	return uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		productos, err := cat.ListProductos()
		if err != nil {
			return err
		}
		for i := range productos {
			if productos[i].ID == id {
				return cat.SaveProductos(append(productos[:i], productos[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}

// ── Recetas ───────────────────────────────────────────────────────────────────

// ListRecetas lista las filas de receta, opcionalmente filtradas por producto.
func (uc *UseCase) ListRecetas(ctx context.Context, productoID string) ([]entity.Receta, error) {
	var out []entity.Receta
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		recetas, err := cat.ListRecetas()
		if err != nil {
			return err
		}
		if productoID == "" {
			out = recetas
			return nil
		}
		for _, r := range recetas {
			if r.ProductoID == productoID {
				out = append(out, r)
			}
		}
		return nil
	})
	return out, err
}

// CreateReceta agrega una fila de receta (producto, material, consumo).
func (uc *UseCase) CreateReceta(ctx context.Context, in dto.CreateRecetaRequest) (*entity.Receta, error) {
	if in.ProductoID == "" || in.MaterialID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.TipoProduccion
	if tipo == "" {
		tipo = entity.ProduccionPorUnidad
	}
	if tipo != entity.ProduccionPorUnidad && tipo != entity.ProduccionPorLote {
		return nil, domain.ErrInvalidInput
	}
	r := entity.Receta{
		ID:             "rec-" + uuid.New().String(),
		ProductoID:     in.ProductoID,
		MaterialID:     in.MaterialID,
		Cantidad:       in.Cantidad,
		Unidad:         in.Unidad,
		TipoProduccion: tipo,
	}
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		recetas, err := cat.ListRecetas()
		if err != nil {
			return err
		}
		return cat.SaveRecetas(append(recetas, r))
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReceta edita una fila de receta.
func (uc *UseCase) UpdateReceta(ctx context.Context, id string, in dto.UpdateRecetaRequest) (*entity.Receta, error) {
	if in.Cantidad != nil && *in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Receta
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		recetas, err := cat.ListRecetas()
		if err != nil {
			return err
		}
		for i := range recetas {
			if recetas[i].ID != id {
				continue
			}
			if in.Cantidad != nil {
				recetas[i].Cantidad = *in.Cantidad
			}
			if in.Unidad != nil {
				recetas[i].Unidad = *in.Unidad
			}
			if in.TipoProduccion != nil {
				recetas[i].TipoProduccion = *in.TipoProduccion
			}
			out = &recetas[i]
			return cat.SaveRecetas(recetas)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteReceta borra una fila de receta.
func (uc *UseCase) DeleteReceta(ctx context.Context, id string) error {
	return uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		recetas, err := cat.ListRecetas()
		if err != nil {
			return err
		}
		for i := range recetas {
			if recetas[i].ID == id {
				return cat.SaveRecetas(append(recetas[:i], recetas[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}
