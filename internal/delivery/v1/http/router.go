package http

import (
	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC, catalogUC usecase.CatalogUC, adminUC usecase.AdminUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCartRoutes(v1, NewCartHandler(cartUC, r.logger))
		registerCheckoutRoutes(v1, NewCheckoutHandler(checkoutUC, r.logger))
		registerCatalogRoutes(v1, NewProductHandler(catalogUC, r.logger))
		registerAdminRoutes(v1, NewAdminHandler(adminUC, r.logger))
	})
}

func registerCartRoutes(router chi.Router, handler *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", handler.getCart)
		cart.Delete("/", handler.clearCart)
		cart.Post("/items", handler.addItem)
		cart.Patch("/items/{lineID}", handler.updateItem)
		cart.Delete("/items/{lineID}", handler.removeItem)
	})
}

func registerCheckoutRoutes(router chi.Router, handler *CheckoutHandler) {
	router.Route("/checkout", func(checkout chi.Router) {
		checkout.Post("/shipping-quote", handler.quoteShipping)
		checkout.Post("/orders", handler.placeOrder)
	})
}

func registerCatalogRoutes(router chi.Router, handler *ProductHandler) {
	router.Get("/products", handler.listProducts)
	router.Get("/products/{slug}", handler.getProduct)
	router.Get("/categories", handler.listCategories)
	router.Get("/locations", handler.listLocations)
}

func registerAdminRoutes(router chi.Router, handler *AdminHandler) {
	router.Route("/admin", func(admin chi.Router) {
		admin.Route("/products", func(products chi.Router) {
			products.Post("/", handler.registerNewProduct)
			products.Put("/{id}", handler.updateProduct)
			products.Delete("/{id}", handler.archiveProduct)
		})

		admin.Post("/categories", handler.createCategory)

		admin.Route("/orders", func(orders chi.Router) {
			orders.Get("/", handler.listOrders)
			orders.Get("/{id}", handler.getOrder)
			orders.Patch("/{id}/status", handler.updateOrderStatus)
		})

		admin.Get("/customers", handler.listCustomers)

		admin.Route("/locations", func(locations chi.Router) {
			locations.Post("/", handler.createLocation)
			locations.Put("/{id}", handler.updateLocation)
		})
	})
}
