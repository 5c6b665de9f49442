package server

import (
	"context"

	"aerocastle-backend/internal/handler"
	mw "aerocastle-backend/internal/middleware"
	"aerocastle-backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echo              *echo.Echo
	jwtSecret         string
	orderHandler      *handler.OrderHandler
	paymentHandler    *handler.PaymentHandler
	catalogHandler    *handler.CatalogHandler
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	engagementHandler *handler.EngagementHandler
}

func NewServer(
	orderService service.OrderService,
	paymentService service.PaymentService,
	catalogService service.CatalogService,
	authService service.AuthService,
	userService service.UserService,
	engagementService service.EngagementService,
	jwtSecret string,
	uploadDir string,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mw.Metrics())

	e.Static("/uploads", uploadDir)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s := &Server{
		echo:              e,
		jwtSecret:         jwtSecret,
		orderHandler:      handler.NewOrderHandler(orderService),
		paymentHandler:    handler.NewPaymentHandler(paymentService),
		catalogHandler:    handler.NewCatalogHandler(catalogService),
		authHandler:       handler.NewAuthHandler(authService),
		userHandler:       handler.NewUserHandler(userService),
		engagementHandler: handler.NewEngagementHandler(engagementService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	auth := mw.JWTAuth(s.jwtSecret)
	admin := mw.AdminOnly()

	api.GET("/check", func(c echo.Context) error {
		return c.String(200, "El servidor esta funcionando!")
	})

	// -------- auth --------
	api.POST("/register", s.authHandler.Register)
	api.POST("/confirm", s.authHandler.Confirm)
	api.POST("/login", s.authHandler.Login)

	// -------- catalog --------
	api.GET("/productos", s.catalogHandler.ListProducts)
	api.GET("/productos/:id", s.catalogHandler.GetProduct)
	api.POST("/productos", s.catalogHandler.CreateProduct, auth, admin)
	api.PUT("/productos/:id", s.catalogHandler.UpdateProduct, auth, admin)
	api.DELETE("/productos/:id", s.catalogHandler.DeleteProduct, auth, admin)

	api.GET("/marcas", s.catalogHandler.ListBrands)
	api.GET("/marcas/:id", s.catalogHandler.GetBrand)
	api.POST("/marcas", s.catalogHandler.CreateBrand, auth, admin)
	api.PUT("/marcas/:id", s.catalogHandler.UpdateBrand, auth, admin)
	api.DELETE("/marcas/:id", s.catalogHandler.DeleteBrand, auth, admin)

	api.GET("/categorias", s.catalogHandler.ListCategories)
	api.GET("/categorias/:id", s.catalogHandler.GetCategory)
	api.POST("/categorias", s.catalogHandler.CreateCategory, auth, admin)
	api.PUT("/categorias/:id", s.catalogHandler.UpdateCategory, auth, admin)
	api.DELETE("/categorias/:id", s.catalogHandler.DeleteCategory, auth, admin)

	api.GET("/proveedores", s.catalogHandler.ListSuppliers)
	api.GET("/proveedores/:id", s.catalogHandler.GetSupplier)
	api.POST("/proveedores", s.catalogHandler.CreateSupplier, auth, admin)
	api.PUT("/proveedores/:id", s.catalogHandler.UpdateSupplier, auth, admin)
	api.DELETE("/proveedores/:id", s.catalogHandler.DeleteSupplier, auth, admin)

	// -------- users --------
	api.GET("/usuarios", s.userHandler.ListUsers, auth)
	api.GET("/usuarios/:userId", s.userHandler.GetUser, auth)
	api.PUT("/usuarios/:userId", s.userHandler.UpdateUser, auth)
	api.DELETE("/usuarios/:userId", s.userHandler.DeleteUser, auth, admin)
	api.PATCH("/usuarios/:userId/admin", s.userHandler.SetAdmin, auth, admin)

	// -------- orders --------
	api.POST("/pedidos", s.orderHandler.CreateOrder)
	api.GET("/pedidos", s.orderHandler.ListOrders)
	api.GET("/pedidos/:id", s.orderHandler.GetOrder)
	api.GET("/usuarios/:userId/pedidos", s.orderHandler.ListUserOrders)
	api.POST("/pedidos/:id/cancelar", s.orderHandler.CancelOrder)
	api.POST("/pedidos/:id/confirmar", s.orderHandler.ConfirmOrder)

	// -------- payments --------
	api.POST("/pagos", s.paymentHandler.RegisterPayment)
	api.GET("/pagos/:paymentId", s.paymentHandler.GetPayment)
	api.GET("/pedidos/:orderId/pagos", s.paymentHandler.ListOrderPayments)

	// -------- reviews / wish list --------
	api.GET("/productos/:id/resenas", s.engagementHandler.ListProductReviews)
	api.POST("/resenas", s.engagementHandler.CreateReview)
	api.PATCH("/resenas/:id/aprobar", s.engagementHandler.ApproveReview, auth, admin)
	api.DELETE("/resenas/:id", s.engagementHandler.DeleteReview, auth)

	api.GET("/usuarios/:userId/lista-deseos", s.engagementHandler.ListWishlist)
	api.POST("/lista-deseos", s.engagementHandler.AddToWishlist)
	api.DELETE("/lista-deseos/:id", s.engagementHandler.RemoveFromWishlist)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
