package entity

import "time"

// Roles válidos para User.
const (
	RolAdministrador = "administrador"
	RolVendedor      = "vendedor"
)

// RolValido indica si s es uno de los roles del sistema.
func RolValido(s string) bool {
	switch s {
	case RolAdministrador, RolVendedor:
		return true
	}
	return false
}

// User representa un usuario del sistema. Los usuarios nunca se eliminan:
// se desactivan con Activo=false y quedan como referencia histórica de sus pedidos.
type User struct {
	ID            string
	Username      string // único
	Email         string // único
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre        string
	Rol           string // administrador, vendedor
	Activo        bool
	FechaCreacion time.Time
	UltimoLogin   *time.Time
}
