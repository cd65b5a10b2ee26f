package httpserver

import (
	"errors"
	"net/http"

	"storefront/internal/domain"
	customersvc "storefront/internal/service/customer"

	"github.com/gin-gonic/gin"
)

// writeError maps domain failures to HTTP statuses. The core never shapes
// user-facing text; handlers forward the error message as-is.
func writeError(c *gin.Context, err error) {
	var ise *domain.InsufficientStockError
	var snf *domain.StockNotFoundError

	switch {
	case errors.As(err, &ise):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "insufficient stock",
			"productId": ise.ProductID,
			"requested": ise.Requested,
			"available": ise.Available,
		})
	case errors.As(err, &snf):
		c.JSON(http.StatusConflict, gin.H{"error": "no stock record", "productId": snf.ProductID})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
	case errors.Is(err, domain.ErrTransientConflict):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "conflicting order in progress, retry"})
	case errors.Is(err, customersvc.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
