package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	EstadoPendiente = "pendiente"
	EstadoEnviado   = "enviado"
	EstadoRecibido  = "recibido"
	EstadoCancelado = "cancelado"
)

// EstadoValido indica si s es uno de los estados del ciclo de vida.
func EstadoValido(s string) bool {
	switch s {
	case EstadoPendiente, EstadoEnviado, EstadoRecibido, EstadoCancelado:
		return true
	}
	return false
}

// Pedido es la raíz del agregado: cabecera más su colección de items.
// Total y TotalItems se calculan siempre desde los items, nunca se almacenan.
type Pedido struct {
	ID              string
	Codigo          string // formato PED-<yyyymmddhhmmss>-<token>, único e inmutable
	DistribuidoraID string
	UsuarioID       string // usuario que creó el pedido (dueño)
	FechaCreacion   time.Time
	FechaEntrega    *time.Time // se estampa una sola vez, al entrar en recibido
	Estado          string
	Observaciones   string
	Items           []*ItemPedido
}

// Total devuelve la suma de subtotales de los items (cero para un pedido vacío).
func (p *Pedido) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalItems devuelve la suma de cantidades de los items.
func (p *Pedido) TotalItems() int {
	n := 0
	for _, item := range p.Items {
		n += item.Cantidad
	}
	return n
}

// EsDe indica si el pedido fue creado por el usuario dado.
func (p *Pedido) EsDe(usuarioID string) bool {
	return p.UsuarioID == usuarioID
}

// EsTerminal indica si el pedido está en un estado terminal (recibido o
// cancelado). Un pedido terminal no admite cambios de estado ni de items.
func (p *Pedido) EsTerminal() bool {
	return p.Estado == EstadoRecibido || p.Estado == EstadoCancelado
}

// PuedeTransicionar aplica la tabla de transiciones:
// pendiente -> {enviado, cancelado}; enviado -> {recibido, cancelado};
// recibido y cancelado son terminales.
func (p *Pedido) PuedeTransicionar(nuevo string) bool {
	switch p.Estado {
	case EstadoPendiente:
		return nuevo == EstadoEnviado || nuevo == EstadoCancelado
	case EstadoEnviado:
		return nuevo == EstadoRecibido || nuevo == EstadoCancelado
	case EstadoRecibido, EstadoCancelado:
		return false
	}
	return false
}

// CambiarEstado valida la transición y la aplica. La primera vez que el pedido
// entra en recibido estampa FechaEntrega con ahora; nunca la sobrescribe.
// Devuelve false si la transición no está permitida.
func (p *Pedido) CambiarEstado(nuevo string, ahora time.Time) bool {
	if !p.PuedeTransicionar(nuevo) {
		return false
	}
	p.Estado = nuevo
	if nuevo == EstadoRecibido && p.FechaEntrega == nil {
		p.FechaEntrega = &ahora
	}
	return true
}
