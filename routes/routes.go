// routes/routes.go
package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"go-headphone-store/controllers"
	"go-headphone-store/middleware"
	"go-headphone-store/utils"
)

// RegisterRoutes sets up all the routes for the application.
func RegisterRoutes(router *mux.Router, gate *middleware.AuthGate, userController *controllers.UserController, cartController *controllers.CartController, checkoutController *controllers.CheckoutController, invoiceController *controllers.InvoiceController, dataController *controllers.DataController) {
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFail(w, http.StatusNotFound, fmt.Sprintf("Can't find %s on this server!", r.URL.Path))
	})

	// Public user routes
	user := router.PathPrefix("/user").Subrouter()
	user.HandleFunc("/signup", userController.Signup).Methods("POST")
	user.HandleFunc("/login", userController.Login).Methods("POST")

	// Protected user routes
	protected := router.PathPrefix("/user").Subrouter()
	protected.Use(gate.Middleware)
	protected.HandleFunc("/logout", userController.Logout).Methods("GET")
	protected.HandleFunc("/", userController.GetUser).Methods("GET")
	protected.HandleFunc("/password", userController.UpdatePassword).Methods("PATCH")

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.RemoveFromCart).Methods("PATCH")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")

	// Checkout and invoice routes
	protected.HandleFunc("/checkout", checkoutController.Checkout).Methods("POST")
	protected.HandleFunc("/invoice", invoiceController.CreateInvoice).Methods("POST")
	protected.HandleFunc("/invoice", invoiceController.GetInvoices).Methods("GET")
	protected.HandleFunc("/invoice/{id}", invoiceController.GetInvoiceByID).Methods("GET")

	// Catalog routes
	data := router.PathPrefix("/data").Subrouter()
	data.HandleFunc("/", dataController.GetAllData).Methods("GET")
	data.Handle("/dataByIds", gate.Middleware(http.HandlerFunc(dataController.GetDataByIds))).Methods("GET")
}
