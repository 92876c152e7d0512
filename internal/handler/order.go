package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/ziadsupplies/storefront/internal/order"
)

type createOrderRequest struct {
	CustomerName string            `json:"customerName" validate:"required"`
	Email        string            `json:"email" validate:"required,contains=@"`
	Phone        string            `json:"phone" validate:"required,min=6"`
	Address      string            `json:"address" validate:"required"`
	// required only rejects a nil slice, so an absent items key reads as a
	// missing field while an explicit empty list reads as an empty cart.
	Items []cartLineRequest `json:"items" validate:"required,min=1,dive"`
}

// Pointer fields distinguish a missing key from an explicit zero; a zero
// quantity must reach the order store, which rejects it as invalid rather
// than absent.
type cartLineRequest struct {
	ProductID *int64 `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

type createOrderResponse struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

const orderReceivedMessage = "Your order has been received! We'll confirm delivery details shortly via email."

// OrderHandler handles checkout requests.
type OrderHandler struct {
	svc      order.Service
	validate *validator.Validate
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &OrderHandler{svc: svc, validate: validate}
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Request body must be valid JSON.")
		return
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)

	if err := h.validate.Struct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	input := &order.CreateInput{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        make([]order.CartLine, 0, len(req.Items)),
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, order.CartLine{
			ProductID: *line.ProductID,
			Quantity:  *line.Quantity,
		})
	}

	orderID, err := h.svc.Create(r.Context(), input)
	if err != nil {
		if msg := cartErrorMessage(err); msg != "" {
			respondWithError(w, http.StatusBadRequest, msg)
			return
		}
		log.Error().Err(err).Msg("handler: failed to create order")
		respondWithError(w, http.StatusInternalServerError, "We could not complete your order. Please try again.")
		return
	}

	respondWithJSON(w, http.StatusCreated, createOrderResponse{
		OrderID: orderID,
		Status:  order.StatusReceived,
		Message: orderReceivedMessage,
	})
}

// validationMessage maps the first field failure to the message shown to
// the customer.
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request payload."
	}

	fe := fieldErrors[0]
	switch fe.Field() {
	case "email":
		if fe.Tag() == "contains" {
			return "A valid email address is required."
		}
	case "phone":
		if fe.Tag() == "min" {
			return "Phone number looks too short."
		}
	case "items":
		if fe.Tag() == "min" {
			return "Cart cannot be empty."
		}
	case "productId", "quantity":
		return "Cart items require productId and quantity."
	}
	return "Missing required field: " + fe.Field()
}
