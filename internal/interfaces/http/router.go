package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pedidos-api/internal/application/auth"
	"github.com/jhoicas/pedidos-api/internal/application/pedido"
	"github.com/jhoicas/pedidos-api/internal/application/usecase"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	DistribuidoraUC *usecase.DistribuidoraUseCase
	ProductoUC      *usecase.ProductoUseCase
	UserUC          *usecase.UserUseCase
	DashboardUC     *usecase.DashboardUseCase
	PedidoUC        *pedido.PedidoUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Los middlewares cortan por token y rol;
// la propiedad de los pedidos se verifica dentro del caso de uso con el Actor.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo administrador
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequireRole(entity.RolAdministrador),
		authHandler.Register,
	)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	ventas := RequireRole(entity.RolAdministrador, entity.RolVendedor)
	soloAdmin := RequireRole(entity.RolAdministrador)

	// Distribuidoras (admin y vendedor; eliminar en cascada solo admin)
	distribuidoras := protected.Group("/distribuidoras", ventas)
	distribuidoraHandler := NewDistribuidoraHandler(deps.DistribuidoraUC)
	distribuidoras.Post("/", distribuidoraHandler.Create)
	distribuidoras.Get("/", distribuidoraHandler.List)
	distribuidoras.Get("/:id", distribuidoraHandler.GetByID)
	distribuidoras.Put("/:id", distribuidoraHandler.Update)
	distribuidoras.Post("/:id/deactivate", distribuidoraHandler.Deactivate)
	distribuidoras.Delete("/:id", soloAdmin, distribuidoraHandler.Delete)

	// Productos (admin y vendedor)
	productos := protected.Group("/productos", ventas)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", productoHandler.Update)
	productos.Post("/:id/deactivate", productoHandler.Deactivate)

	// Pedidos (admin y vendedor; el vendedor solo sobre los suyos)
	pedidos := protected.Group("/pedidos", ventas)
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Post("/:id/items", pedidoHandler.AgregarItem)
	pedidos.Delete("/:id/items/:itemId", pedidoHandler.EliminarItem)
	pedidos.Put("/:id/estado", pedidoHandler.CambiarEstado)

	// Usuarios (solo administrador)
	usuarios := protected.Group("/usuarios", soloAdmin)
	userHandler := NewUserHandler(deps.UserUC)
	usuarios.Get("/", userHandler.List)
	usuarios.Post("/:id/toggle-activo", userHandler.ToggleActivo)

	// Dashboard (cualquier usuario autenticado)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}
