package dto

// DashboardResponse contadores generales del sistema.
// Las distribuidoras y productos cuentan solo registros activos; los pedidos
// cuentan todos, desglosados por estado.
type DashboardResponse struct {
	TotalDistribuidoras int              `json:"total_distribuidoras"`
	TotalProductos      int              `json:"total_productos"`
	TotalPedidos        int              `json:"total_pedidos"`
	PedidosPorEstado    map[string]int   `json:"pedidos_por_estado"`
	PedidosRecientes    []PedidoResponse `json:"pedidos_recientes"`
	// Solo para administradores; cero en la vista de vendedor.
	UsuariosPorRol map[string]int `json:"usuarios_por_rol,omitempty"`
}
