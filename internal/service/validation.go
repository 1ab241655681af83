package service

import (
	"strings"

	apperrors "github.com/inkwell-books/orders-service/internal/errors"
	"github.com/inkwell-books/orders-service/internal/models"
)

// ValidateCODOrderRequest checks a submission for the required fields and
// reports every missing one in a single error.
func ValidateCODOrderRequest(req *models.CODOrderRequest) error {
	var missing []string

	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(req.Address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(req.Book) == "" {
		missing = append(missing, "book")
	}

	if len(missing) > 0 {
		return apperrors.NewValidationError(missing...)
	}

	return nil
}

// effectivePrice applies the default when the caller omitted the price or
// supplied a falsy one.
func effectivePrice(price *float64) float64 {
	if price == nil || *price <= 0 {
		return models.DefaultPrice
	}
	return *price
}
