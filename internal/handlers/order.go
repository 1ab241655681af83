package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/inkwell-books/orders-service/internal/errors"
	"github.com/inkwell-books/orders-service/internal/models"
)

// SubmitCODOrder handles POST /order-cod.
func (h *Handlers) SubmitCODOrder(c *gin.Context) {
	var req models.CODOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("failed to bind request", "error", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	order, err := h.orderService.SubmitOrder(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CODOrderResponse{
		Success: true,
		Message: "Order placed!",
		OrderID: order.ID,
	})
}

// ListOrders handles GET /orders.
func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// handleError converts pipeline errors to their HTTP responses. Anything
// untyped becomes a generic 500 so a bad request can never crash the process.
func handleError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Missing fields",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: "Server error",
	})
}
