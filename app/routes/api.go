package routes

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/controllers"
	"github.com/shashiranjanraj/orderdesk/config"
	"github.com/shashiranjanraj/orderdesk/pkg/response"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
)

// RegisterAPI wires the HTTP surface onto the router.
func RegisterAPI(r *router.Router, products *controllers.ProductController, orders *controllers.OrderController) {
	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, map[string]string{
			"status":  "ok",
			"service": "orderdesk",
			"env":     config.AppEnv(),
		})
	})

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, map[string]string{"status": "ok"})
	})

	api := r.Group("/api")
	api.Get("/products", "products.index", products.List)
	api.Get("/order", "orders.index", orders.List)
	api.Get("/order/{id}", "orders.show", orders.Get)
	api.Post("/orders", "orders.store", orders.Create)
	api.Put("/orders/{id}", "orders.update", orders.Update)
	api.Delete("/orders/{id}", "orders.destroy", orders.Delete)
}
