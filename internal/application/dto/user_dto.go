package dto

import "time"

// RegisterRequest entrada para registro de usuarios (solo administrador).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=100"`
	Rol      string `json:"rol" validate:"omitempty,oneof=administrador vendedor"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	Nombre        string     `json:"nombre"`
	Rol           string     `json:"rol"`
	Activo        bool       `json:"activo"`
	FechaCreacion time.Time  `json:"fecha_creacion"`
	UltimoLogin   *time.Time `json:"ultimo_login,omitempty"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
