package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Codigo      string          `json:"codigo" validate:"required,min=1,max=20"`
	Nombre      string          `json:"nombre" validate:"required,min=1,max=100"`
	Precio      decimal.Decimal `json:"precio" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	Descripcion string          `json:"descripcion"`
}

// UpdateProductoRequest entrada para actualización parcial.
type UpdateProductoRequest struct {
	Codigo      *string          `json:"codigo" validate:"omitempty,min=1,max=20"`
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=100"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Descripcion *string          `json:"descripcion"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID            string          `json:"id"`
	Codigo        string          `json:"codigo"`
	Nombre        string          `json:"nombre"`
	Precio        decimal.Decimal `json:"precio"`
	Stock         int             `json:"stock"`
	Descripcion   string          `json:"descripcion"`
	Activo        bool            `json:"activo"`
	FechaCreacion time.Time       `json:"fecha_creacion"`
}

// ProductoListResponse listado paginado.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
