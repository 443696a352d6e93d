package entity

import "time"

// Distribuidora representa un proveedor al que se le emiten pedidos.
// Es dueña de sus pedidos: eliminarla elimina también los pedidos asociados
// (cascada que el caso de uso aplica de forma explícita en una transacción).
type Distribuidora struct {
	ID            string
	Codigo        string // único entre todas las distribuidoras, activas o no
	Nombre        string
	Contacto      string
	Telefono      string
	Email         string
	Direccion     string
	Activa        bool
	FechaCreacion time.Time
}
