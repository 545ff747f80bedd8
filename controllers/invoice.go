package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"go-headphone-store/middleware"
	"go-headphone-store/models"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

// InvoiceController turns accumulated checkout records into numbered
// invoices and serves invoice lookups.
type InvoiceController struct {
	Users  store.UserStore
	Email  *utils.EmailService
	Logger *zap.Logger
}

// NewInvoiceController creates a new InvoiceController.
func NewInvoiceController(users store.UserStore, email *utils.EmailService, logger *zap.Logger) *InvoiceController {
	return &InvoiceController{
		Users:  users,
		Email:  email,
		Logger: logger,
	}
}

// CreateInvoice bundles all pending checkout records into one invoice and
// clears the checkout history; both happen in a single store update. The
// invoice id is the count of existing invoices plus one.
func (ic *InvoiceController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	var req struct {
		Address       string `json:"address"`
		PaymentOption string `json:"paymentOption"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if req.Address == "" || req.PaymentOption == "" {
		utils.WriteFail(w, http.StatusBadRequest, "Please provide a billing address and payment option!")
		return
	}

	address := models.BillingAddress{
		Name:    user.Name,
		Address: req.Address,
	}

	invoice, err := ic.Users.CreateInvoice(r.Context(), user.ID, address, req.PaymentOption, time.Now())
	if err != nil {
		ic.Logger.Error("create invoice error", zap.Error(err))
		utils.WriteError(w)
		return
	}

	if ic.Email.Enabled() {
		go func(email, name string, invoice models.Invoice) {
			if err := ic.Email.SendInvoiceEmail(email, name, invoice); err != nil {
				ic.Logger.Error("send invoice email error", zap.Error(err), zap.String("email", email))
			}
		}(user.Email, user.Name, *invoice)
	}

	utils.WriteMessage(w, http.StatusOK, "Invoice created successfully")
}

// GetInvoices returns all invoices of the authenticated user.
func (ic *InvoiceController) GetInvoices(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	invoices := user.Invoices
	if invoices == nil {
		invoices = []models.Invoice{}
	}

	utils.WriteData(w, http.StatusOK, map[string]interface{}{"invoice": invoices})
}

// GetInvoiceByID returns a single invoice by its per-user id.
func (ic *InvoiceController) GetInvoiceByID(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteFail(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		utils.WriteFail(w, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	for _, invoice := range user.Invoices {
		if invoice.ID == id {
			utils.WriteData(w, http.StatusOK, map[string]interface{}{"invoice": invoice})
			return
		}
	}

	utils.WriteFail(w, http.StatusNotFound, "Invoice not found")
}
