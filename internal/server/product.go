package server

import (
	"net/http"
	"strings"

	pricingdomain "github.com/aurelia-jewels/aurelia/internal/pricing/domain"
	productdomain "github.com/aurelia-jewels/aurelia/internal/product/domain"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	SKU         string         `json:"sku"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	GoldPurity  int            `json:"gold_purity"`
	GoldWeight  float64        `json:"gold_weight"`
	Clarity     string         `json:"diamond_clarity"`
	Carat       float64        `json:"diamond_carat"`
	Active      *bool          `json:"active"`
	Metadata    map[string]any `json:"metadata"`
}

type updateProductRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	GoldPurity  *int           `json:"gold_purity"`
	GoldWeight  *float64       `json:"gold_weight"`
	Clarity     *string        `json:"diamond_clarity"`
	Carat       *float64       `json:"diamond_carat"`
	Active      *bool          `json:"active"`
	Metadata    map[string]any `json:"metadata"`
}

// pricedProduct is the storefront shape: the catalog fields plus a
// breakdown computed from whatever rates are live right now.
type pricedProduct struct {
	productdomain.Response
	Pricing *pricingdomain.Breakdown `json:"pricing"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateRequest{
		SKU:         strings.TrimSpace(req.SKU),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		GoldPurity:  req.GoldPurity,
		GoldWeight:  req.GoldWeight,
		Clarity:     strings.TrimSpace(req.Clarity),
		Carat:       req.Carat,
		Active:      req.Active,
		Metadata:    req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		Name       string `form:"name"`
		GoldPurity string `form:"gold_purity"`
		Clarity    string `form:"diamond_clarity"`
		Active     string `form:"active"`
		SortBy     string `form:"sort_by"`
		OrderBy    string `form:"order_by"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	active, err := parseOptionalBool(query.Active)
	if err != nil {
		AbortWithError(c, newValidationError("active", "invalid_active", "invalid active"))
		return
	}
	purity, err := parseOptionalInt(query.GoldPurity)
	if err != nil {
		AbortWithError(c, newValidationError("gold_purity", "invalid_gold_purity", "invalid gold purity"))
		return
	}

	products, err := s.productSvc.List(c.Request.Context(), productdomain.ListRequest{
		Name:       strings.TrimSpace(query.Name),
		GoldPurity: purity,
		Clarity:    strings.TrimSpace(query.Clarity),
		Active:     active,
		SortBy:     strings.TrimSpace(query.SortBy),
		OrderBy:    strings.TrimSpace(query.OrderBy),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	priced, err := s.priceProducts(c, products)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": priced})
}

func (s *Server) GetProductByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	priced, err := s.priceProduct(c, *resp)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": priced})
}

func (s *Server) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	resp, err := s.productSvc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	priced, err := s.priceProduct(c, *resp)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": priced})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), productdomain.UpdateRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Name:        req.Name,
		Description: req.Description,
		GoldPurity:  req.GoldPurity,
		GoldWeight:  req.GoldWeight,
		Clarity:     req.Clarity,
		Carat:       req.Carat,
		Active:      req.Active,
		Metadata:    req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ArchiveProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.productSvc.Archive(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) priceProduct(c *gin.Context, p productdomain.Response) (*pricedProduct, error) {
	breakdown, err := s.pricingSvc.Quote(c.Request.Context(), pricingdomain.ItemOf(p))
	if err != nil {
		return nil, err
	}
	return &pricedProduct{Response: p, Pricing: breakdown}, nil
}

func (s *Server) priceProducts(c *gin.Context, products []productdomain.Response) ([]pricedProduct, error) {
	items := make([]pricingdomain.Item, 0, len(products))
	for _, p := range products {
		items = append(items, pricingdomain.ItemOf(p))
	}

	breakdowns, err := s.pricingSvc.QuoteAll(c.Request.Context(), items)
	if err != nil {
		return nil, err
	}

	priced := make([]pricedProduct, 0, len(products))
	for i, p := range products {
		breakdown := breakdowns[i]
		priced = append(priced, pricedProduct{Response: p, Pricing: &breakdown})
	}
	return priced, nil
}

func isProductValidationError(err error) bool {
	switch err {
	case productdomain.ErrInvalidSKU,
		productdomain.ErrInvalidName,
		productdomain.ErrInvalidPurity,
		productdomain.ErrInvalidWeight,
		productdomain.ErrInvalidCarat,
		productdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
