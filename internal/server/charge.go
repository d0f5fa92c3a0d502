package server

import (
	"net/http"
	"strings"

	chargedomain "github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/gin-gonic/gin"
)

type createChargeRequest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	ApplyOn  string  `json:"apply_on"`
	IsTax    *bool   `json:"is_tax"`
	Category *string `json:"category"`
	IsActive *bool   `json:"is_active"`
}

type updateChargeRequest struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Amount   *float64 `json:"amount"`
	ApplyOn  *string  `json:"apply_on"`
	IsTax    *bool    `json:"is_tax"`
	Category *string  `json:"category"`
	IsActive *bool    `json:"is_active"`
}

func (s *Server) CreateCharge(c *gin.Context) {
	var req createChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	create := chargedomain.CreateRequest{
		Name:     strings.TrimSpace(req.Name),
		Type:     chargedomain.ChargeType(strings.TrimSpace(req.Type)),
		Amount:   req.Amount,
		ApplyOn:  chargedomain.ApplyOn(strings.TrimSpace(req.ApplyOn)),
		IsTax:    req.IsTax,
		IsActive: req.IsActive,
	}
	if req.Category != nil {
		category := chargedomain.Category(strings.TrimSpace(*req.Category))
		create.Category = &category
	}

	resp, err := s.chargeSvc.Create(c.Request.Context(), create)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCharges(c *gin.Context) {
	var query struct {
		Name    string `form:"name"`
		Type    string `form:"type"`
		Active  string `form:"active"`
		SortBy  string `form:"sort_by"`
		OrderBy string `form:"order_by"`
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

	resp, err := s.chargeSvc.List(c.Request.Context(), chargedomain.ListRequest{
		Name:     strings.TrimSpace(query.Name),
		Type:     strings.TrimSpace(query.Type),
		IsActive: active,
		SortBy:   strings.TrimSpace(query.SortBy),
		OrderBy:  strings.TrimSpace(query.OrderBy),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateCharge(c *gin.Context) {
	var req updateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	update := chargedomain.UpdateRequest{
		ID:       strings.TrimSpace(c.Param("id")),
		Name:     req.Name,
		Amount:   req.Amount,
		IsTax:    req.IsTax,
		IsActive: req.IsActive,
	}
	if req.Type != nil {
		chargeType := chargedomain.ChargeType(strings.TrimSpace(*req.Type))
		update.Type = &chargeType
	}
	if req.ApplyOn != nil {
		applyOn := chargedomain.ApplyOn(strings.TrimSpace(*req.ApplyOn))
		update.ApplyOn = &applyOn
	}
	if req.Category != nil {
		category := chargedomain.Category(strings.TrimSpace(*req.Category))
		update.Category = &category
	}

	resp, err := s.chargeSvc.Update(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeactivateCharge(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.chargeSvc.Deactivate(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isChargeValidationError(err error) bool {
	switch err {
	case chargedomain.ErrInvalidName,
		chargedomain.ErrInvalidType,
		chargedomain.ErrInvalidApplyOn,
		chargedomain.ErrInvalidAmount,
		chargedomain.ErrInvalidCategory,
		chargedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
