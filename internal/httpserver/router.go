package httpserver

import (
	"context"
	"log"
	"time"

	"storefront/internal/domain"
	"storefront/internal/service/customer"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the handlers call. Interfaces are declared here,
// on the consumer side, so handler tests can stub them.
type Deps struct {
	CustomerSvc  customerService
	CatalogSvc   catalogService
	CartSvc      cartService
	OrderSvc     orderService
	InventorySvc inventoryService
	HistorySvc   historyService
}

type customerService interface {
	Register(ctx context.Context, in customer.RegisterInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

type catalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type cartService interface {
	AddItem(ctx context.Context, customerID, productID string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, itemID string) error
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
}

type orderService interface {
	Place(ctx context.Context, customerID, cartID string, deliveryAt *time.Time) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
}

type inventoryService interface {
	StockFor(ctx context.Context, productID string) (int, error)
}

type historyService interface {
	ListByCustomer(ctx context.Context, customerID string) ([]domain.PurchaseHistory, error)
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/customers", registerHandler(deps.CustomerSvc))
	router.GET("/customers/:id/history", historyHandler(deps.HistorySvc))

	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	router.GET("/products/:id/stock", stockHandler(deps.InventorySvc))
	router.GET("/categories", listCategoriesHandler(deps.CatalogSvc))

	router.GET("/cart", getCartHandler(deps.CartSvc))
	router.POST("/cart/items", addToCartHandler(deps.CartSvc))
	router.DELETE("/cart/items/:id", removeFromCartHandler(deps.CartSvc))

	router.POST("/orders", placeOrderHandler(deps.OrderSvc))
	router.GET("/orders/:id", getOrderHandler(deps.OrderSvc))

	return router
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header("X-Request-Id", rid)
		c.Next()
	}
}
