package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicateCode     = errors.New("el código ya está en uso")
	ErrUsernameExists    = errors.New("el usuario ya existe")
	ErrEmailExists       = errors.New("el email ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor o igual a 1")
	ErrItemMismatch      = errors.New("el item no pertenece a este pedido")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrPedidoCerrado     = errors.New("el pedido está en un estado terminal")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrAuthFailed        = errors.New("usuario o contraseña incorrectos")
	ErrSelfDeactivate    = errors.New("no puedes desactivar tu propio usuario")
)
