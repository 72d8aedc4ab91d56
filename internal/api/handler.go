package api

import (
	"net/http"
	"strconv"
	"time"

	"fulfillment-service/internal/engine"
	"fulfillment-service/internal/models"
	"fulfillment-service/internal/service"
	"fulfillment-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	fulfillment *service.FulfillmentService
}

// NewHandler creates a new HTTP handler
func NewHandler(fulfillment *service.FulfillmentService) *Handler {
	return &Handler{
		fulfillment: fulfillment,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/orders", h.submitOrder)
		v1.POST("/restocks", h.submitRestock)
		v1.POST("/products", h.addProduct)
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)
		v1.GET("/deferred", h.listDeferredOrders)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// submitOrder accepts an order for processing. 202 means accepted, not
// fully shipped: any remainder is deferred until the next restock.
func (h *Handler) submitOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := h.fulfillment.SubmitOrder(c.Request.Context(), order)
	if err != nil {
		if engine.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid order payload",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process order",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"order_id":           result.OrderID,
		"status":             "accepted",
		"packages_shipped":   len(result.Shipped),
		"deferred_remainder": result.Deferred,
	})
}

// submitRestock applies a restock payload and triggers one replay of the
// deferred demand queue
func (h *Handler) submitRestock(c *gin.Context) {
	var restocks []models.Restock
	if err := c.ShouldBindJSON(&restocks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.fulfillment.SubmitRestock(c.Request.Context(), restocks); err != nil {
		if engine.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid restock payload",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to apply restock",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"entries": len(restocks),
	})
}

// addProductRequest represents a request to add a catalog product
type addProductRequest struct {
	Name       string `json:"product_name" binding:"required"`
	UnitWeight int64  `json:"mass_g" binding:"required"`
}

// addProduct registers a new product and returns its assigned id
func (h *Handler) addProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.fulfillment.AddProduct(c.Request.Context(), req.Name, req.UnitWeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid product",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// listProducts returns the catalog in insertion order
func (h *Handler) listProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.fulfillment.ListProducts(c.Request.Context()))
}

// getProduct returns one product by id
func (h *Handler) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.fulfillment.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// listDeferredOrders returns a snapshot of outstanding deferred demand
func (h *Handler) listDeferredOrders(c *gin.Context) {
	deferred := h.fulfillment.ListDeferredOrders(c.Request.Context())
	if deferred == nil {
		deferred = []models.DeferredOrder{}
	}
	c.JSON(http.StatusOK, deferred)
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
