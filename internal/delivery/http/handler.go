package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitform/backend/internal/domain"
	"github.com/fitform/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	sizing     *usecase.RecommendationService
	storefront domain.StorefrontClient
	cache      domain.CacheRepository
	cacheTTL   time.Duration
}

// NewHandler creates a new HTTP handler. storefront and cache may be nil;
// product resolution by handle is then unavailable and requests must carry
// product objects inline.
func NewHandler(sizing *usecase.RecommendationService, storefront domain.StorefrontClient, cache domain.CacheRepository, cacheTTL time.Duration) *Handler {
	return &Handler{
		sizing:     sizing,
		storefront: storefront,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "fitform-backend",
		"version": "1.0.0",
	})
}

// recommendRequest is the body of POST /sizing/recommend. Either a full
// product object or a handle may be supplied; free text is parsed into the
// user context before recommending.
type recommendRequest struct {
	Product       *domain.Product      `json:"product,omitempty"`
	ProductHandle string               `json:"product_handle,omitempty"`
	User          *domain.Measurements `json:"user"`
	Gender        domain.Gender        `json:"gender,omitempty"`
	Text          string               `json:"text,omitempty"`
}

// RecommendSize handles POST /sizing/recommend
func (h *Handler) RecommendSize(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product := req.Product
	if product == nil && req.ProductHandle != "" {
		resolved, err := h.resolveProduct(c, req.ProductHandle)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "product lookup failed"})
			return
		}
		product = resolved
	}

	user := req.User
	if user == nil && req.Text != "" {
		user = &domain.Measurements{}
	}

	input := usecase.RecommendInput{Product: product, User: user, Gender: req.Gender}
	schema := h.sizing.SchemaForInput(input)

	if req.Text != "" && user != nil {
		parsed := h.sizing.ParseUserInput(req.Text, schema)
		mergeMeasurements(user, parsed.Measurements)
	}

	recommendation := h.sizing.RecommendForProduct(usecase.RecommendInput{
		Product: product,
		User:    user,
		Gender:  req.Gender,
	})
	if recommendation == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user context is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendation": recommendation,
		"schema":         schema,
		"missingInputs":  h.sizing.GetMissingInputs(schema, user),
		"validation":     h.sizing.ValidateAtomic(schema, user),
	})
}

// schemaRequest is the body of POST /sizing/schema
type schemaRequest struct {
	Product       *domain.Product `json:"product,omitempty"`
	ProductHandle string          `json:"product_handle,omitempty"`
}

// DetectSchema handles POST /sizing/schema
func (h *Handler) DetectSchema(c *gin.Context) {
	var req schemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product := req.Product
	if product == nil && req.ProductHandle != "" {
		resolved, err := h.resolveProduct(c, req.ProductHandle)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "product lookup failed"})
			return
		}
		product = resolved
	}

	schema := usecase.DetectSizeSchemaFromProduct(product)
	if schema == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schema": schema})
}

// parseRequest is the body of POST /sizing/parse
type parseRequest struct {
	Text   string         `json:"text" binding:"required"`
	Schema *domain.Schema `json:"schema,omitempty"`
}

// ParseText handles POST /sizing/parse
func (h *Handler) ParseText(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"parsed": h.sizing.ParseUserInput(req.Text, req.Schema)})
}

// validateRequest is the body of POST /sizing/validate
type validateRequest struct {
	Schema *domain.Schema       `json:"schema,omitempty"`
	User   *domain.Measurements `json:"user" binding:"required"`
}

// ValidateMeasurements handles POST /sizing/validate
func (h *Handler) ValidateMeasurements(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user context is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"missingInputs": h.sizing.GetMissingInputs(req.Schema, req.User),
		"validation":    h.sizing.ValidateAtomic(req.Schema, req.User),
	})
}

// resolveProduct fetches a product by handle, cache-first
func (h *Handler) resolveProduct(c *gin.Context, handle string) (*domain.Product, error) {
	if h.storefront == nil {
		return nil, fmt.Errorf("%w: storefront resolution disabled", domain.ErrStorefrontAPIFailure)
	}

	cacheKey := "product:" + handle

	if h.cache != nil {
		if cached, err := h.cache.Get(c.Request.Context(), cacheKey); err == nil {
			if product, ok := cached.(*domain.Product); ok {
				return product, nil
			}
		}
	}

	product, err := h.storefront.GetProduct(c.Request.Context(), handle)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		// Best effort; a failed cache write must not fail the request
		_ = h.cache.Set(c.Request.Context(), cacheKey, product, h.cacheTTL)
	}

	return product, nil
}

// mergeMeasurements copies parsed fields into the user context without
// overwriting values the user already supplied
func mergeMeasurements(user *domain.Measurements, parsed domain.Measurements) {
	if user.HeightCM == nil {
		user.HeightCM = parsed.HeightCM
	}
	if user.WeightKG == nil {
		user.WeightKG = parsed.WeightKG
	}
	if user.UsualSizeEU == nil {
		user.UsualSizeEU = parsed.UsualSizeEU
	}
	if user.ShirtSizeEU == nil {
		user.ShirtSizeEU = parsed.ShirtSizeEU
	}
	if user.AlphaSize == nil {
		user.AlphaSize = parsed.AlphaSize
	}
	if user.WaistInch == nil {
		user.WaistInch = parsed.WaistInch
	}
}
