package dto

import "github.com/acampoh/artesa-api/internal/domain/entity"

// ProducirRequest body para POST /api/producciones.
// UnidadesBuenas es opcional: en producciones por lote indica cuántas unidades
// buenas resultaron, cero incluido (el consumo de materiales siempre escala
// por Cantidad); omitido, el stock del producto sube en Cantidad.
type ProducirRequest struct {
	ProductoID     string   `json:"productoId"`
	Cantidad       float64  `json:"cantidad"`
	UnidadesBuenas *float64 `json:"unidadesBuenas,omitempty"`
	ModeloID       string   `json:"modeloId,omitempty"`
}

// ProducirResponse respuesta 201 de una producción confirmada.
type ProducirResponse struct {
	Produccion          entity.Produccion `json:"produccion"`
	ProductoActualizado entity.Producto   `json:"productoActualizado"`
}
