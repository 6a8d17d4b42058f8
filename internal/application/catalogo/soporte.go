package catalogo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acampoh/artesa-api/internal/application/dto"
	"github.com/acampoh/artesa-api/internal/domain"
	"github.com/acampoh/artesa-api/internal/domain/entity"
	"github.com/acampoh/artesa-api/internal/domain/repository"
)

// CRUD de las entidades de soporte: proveedores, ferias y modelos.

// ── Proveedores ───────────────────────────────────────────────────────────────

// ListProveedores lista todos los proveedores.
func (uc *UseCase) ListProveedores(ctx context.Context) ([]entity.Proveedor, error) {
	var out []entity.Proveedor
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		var err error
		out, err = cat.ListProveedores()
		return err
	})
	return out, err
}

// CreateProveedor da de alta un proveedor.
func (uc *UseCase) CreateProveedor(ctx context.Context, in dto.CreateProveedorRequest) (*entity.Proveedor, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	p := entity.Proveedor{
		ID:       "prov-" + uuid.New().String(),
		Nombre:   in.Nombre,
		Contacto: in.Contacto,
		Telefono: in.Telefono,
		Email:    in.Email,
		Notas:    in.Notas,
	}
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		proveedores, err := cat.ListProveedores()
		if err != nil {
			return err
		}
		return cat.SaveProveedores(append(proveedores, p))
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProveedor edita un proveedor.
func (uc *UseCase) UpdateProveedor(ctx context.Context, id string, in dto.UpdateProveedorRequest) (*entity.Proveedor, error) {
	var out *entity.Proveedor
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		proveedores, err := cat.ListProveedores()
		if err != nil {
			return err
		}
		for i := range proveedores {
			if proveedores[i].ID != id {
				continue
			}
			if in.Nombre != nil {
				proveedores[i].Nombre = *in.Nombre
			}
			if in.Contacto != nil {
				proveedores[i].Contacto = *in.Contacto
			}
			if in.Telefono != nil {
				proveedores[i].Telefono = *in.Telefono
			}
			if in.Email != nil {
				proveedores[i].Email = *in.Email
			}
			if in.Notas != nil {
				proveedores[i].Notas = *in.Notas
			}
			out = &proveedores[i]
			return cat.SaveProveedores(proveedores)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProveedor borra un proveedor.
func (uc *UseCase) DeleteProveedor(ctx context.Context, id string) error {
	return uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		proveedores, err := cat.ListProveedores()
		if err != nil {
			return err
		}
		for i := range proveedores {
			if proveedores[i].ID == id {
				return cat.SaveProveedores(append(proveedores[:i], proveedores[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}

// ── Ferias ────────────────────────────────────────────────────────────────────

// ListFerias lista todas las ferias.
func (uc *UseCase) ListFerias(ctx context.Context) ([]entity.Feria, error) {
	var out []entity.Feria
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		var err error
		out, err = cat.ListFerias()
		return err
	})
	return out, err
}

// CreateFeria da de alta una feria. Fechas en RFC 3339.
func (uc *UseCase) CreateFeria(ctx context.Context, in dto.CreateFeriaRequest) (*entity.Feria, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	inicio, err := parseFecha(in.FechaInicio)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	fin, err := parseFecha(in.FechaFin)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	f := entity.Feria{
		ID:          "feria-" + uuid.New().String(),
		Nombre:      in.Nombre,
		Lugar:       in.Lugar,
		FechaInicio: inicio,
		FechaFin:    fin,
		CostoPuesto: in.CostoPuesto,
		Notas:       in.Notas,
	}
	err = uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		ferias, err := cat.ListFerias()
		if err != nil {
			return err
		}
		return cat.SaveFerias(append(ferias, f))
	})
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// UpdateFeria edita una feria.
func (uc *UseCase) UpdateFeria(ctx context.Context, id string, in dto.UpdateFeriaRequest) (*entity.Feria, error) {
	var out *entity.Feria
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		ferias, err := cat.ListFerias()
		if err != nil {
			return err
		}
		for i := range ferias {
			if ferias[i].ID != id {
				continue
			}
			if in.Nombre != nil {
				ferias[i].Nombre = *in.Nombre
			}
			if in.Lugar != nil {
				ferias[i].Lugar = *in.Lugar
			}
			if in.FechaInicio != nil {
				t, err := parseFecha(*in.FechaInicio)
				if err != nil {
					return domain.ErrInvalidInput
				}
				ferias[i].FechaInicio = t
			}
			if in.FechaFin != nil {
				t, err := parseFecha(*in.FechaFin)
				if err != nil {
					return domain.ErrInvalidInput
				}
				ferias[i].FechaFin = t
			}
			if in.CostoPuesto != nil {
				ferias[i].CostoPuesto = *in.CostoPuesto
			}
			if in.Notas != nil {
				ferias[i].Notas = *in.Notas
			}
			out = &ferias[i]
			return cat.SaveFerias(ferias)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteFeria borra una feria.
func (uc *UseCase) DeleteFeria(ctx context.Context, id string) error {
	return uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		ferias, err := cat.ListFerias()
		if err != nil {
			return err
		}
		for i := range ferias {
			if ferias[i].ID == id {
				return cat.SaveFerias(append(ferias[:i], ferias[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}

// ── Modelos ───────────────────────────────────────────────────────────────────

// ListModelos lista todos los modelos.
func (uc *UseCase) ListModelos(ctx context.Context) ([]entity.Modelo, error) {
	var out []entity.Modelo
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		var err error
		out, err = cat.ListModelos()
		return err
	})
	return out, err
}

// CreateModelo da de alta un modelo.
func (uc *UseCase) CreateModelo(ctx context.Context, in dto.CreateModeloRequest) (*entity.Modelo, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	m := entity.Modelo{
		ID:          "mod-" + uuid.New().String(),
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		ProductoID:  in.ProductoID,
	}
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		modelos, err := cat.ListModelos()
		if err != nil {
			return err
		}
		return cat.SaveModelos(append(modelos, m))
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateModelo edita un modelo.
func (uc *UseCase) UpdateModelo(ctx context.Context, id string, in dto.UpdateModeloRequest) (*entity.Modelo, error) {
	var out *entity.Modelo
	err := uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		modelos, err := cat.ListModelos()
		if err != nil {
			return err
		}
		for i := range modelos {
			if modelos[i].ID != id {
				continue
			}
			if in.Nombre != nil {
				modelos[i].Nombre = *in.Nombre
			}
			if in.Descripcion != nil {
				modelos[i].Descripcion = *in.Descripcion
			}
			if in.ProductoID != nil {
				modelos[i].ProductoID = *in.ProductoID
			}
			out = &modelos[i]
			return cat.SaveModelos(modelos)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteModelo borra un modelo.
func (uc *UseCase) DeleteModelo(ctx context.Context, id string) error {
	return uc.store.Run(ctx, func(cat repository.Catalogo, _ repository.Ledger) error {
		modelos, err := cat.ListModelos()
		if err != nil {
			return err
		}
		for i := range modelos {
			if modelos[i].ID == id {
				return cat.SaveModelos(append(modelos[:i], modelos[i+1:]...))
			}
		}
		return domain.ErrNotFound
	})
}

// parseFecha acepta RFC 3339 o fecha simple AAAA-MM-DD; vacío devuelve cero.
func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
