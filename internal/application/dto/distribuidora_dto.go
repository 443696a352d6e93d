package dto

import "time"

// CreateDistribuidoraRequest entrada para crear una distribuidora.
type CreateDistribuidoraRequest struct {
	Codigo    string `json:"codigo" validate:"required,min=1,max=20"`
	Nombre    string `json:"nombre" validate:"required,min=1,max=100"`
	Contacto  string `json:"contacto" validate:"required,max=100"`
	Telefono  string `json:"telefono" validate:"required,max=20"`
	Email     string `json:"email" validate:"required,email"`
	Direccion string `json:"direccion" validate:"omitempty"`
}

// UpdateDistribuidoraRequest entrada para actualización parcial.
type UpdateDistribuidoraRequest struct {
	Codigo    *string `json:"codigo" validate:"omitempty,min=1,max=20"`
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=100"`
	Contacto  *string `json:"contacto" validate:"omitempty,max=100"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=20"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

// DistribuidoraResponse salida de una distribuidora.
type DistribuidoraResponse struct {
	ID            string    `json:"id"`
	Codigo        string    `json:"codigo"`
	Nombre        string    `json:"nombre"`
	Contacto      string    `json:"contacto"`
	Telefono      string    `json:"telefono"`
	Email         string    `json:"email"`
	Direccion     string    `json:"direccion"`
	Activa        bool      `json:"activa"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// DistribuidoraListResponse listado paginado.
type DistribuidoraListResponse struct {
	Items []DistribuidoraResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
