package server

import (
	"net/http"
	"strconv"
	"strings"

	diamondratedomain "github.com/aurelia-jewels/aurelia/internal/diamondrate/domain"
	goldratedomain "github.com/aurelia-jewels/aurelia/internal/goldrate/domain"
	"github.com/gin-gonic/gin"
)

type upsertGoldRateRequest struct {
	PricePer10g float64 `json:"price_per_10g"`
	IsActive    *bool   `json:"is_active"`
}

type upsertDiamondRateRequest struct {
	PricePerCarat float64 `json:"price_per_carat"`
	IsActive      *bool   `json:"is_active"`
}

func (s *Server) UpsertGoldRate(c *gin.Context) {
	purity, err := strconv.Atoi(strings.TrimSpace(c.Param("purity")))
	if err != nil {
		AbortWithError(c, newValidationError("purity", "invalid_purity", "invalid purity"))
		return
	}

	var req upsertGoldRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.goldRateSvc.Upsert(c.Request.Context(), goldratedomain.UpsertRequest{
		Purity:      purity,
		PricePer10g: req.PricePer10g,
		IsActive:    req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListGoldRates(c *gin.Context) {
	resp, err := s.goldRateSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpsertDiamondRate(c *gin.Context) {
	clarity := strings.TrimSpace(c.Param("clarity"))

	var req upsertDiamondRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.diamondRateSvc.Upsert(c.Request.Context(), diamondratedomain.UpsertRequest{
		Clarity:       clarity,
		PricePerCarat: req.PricePerCarat,
		IsActive:      req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListDiamondRates(c *gin.Context) {
	resp, err := s.diamondRateSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isGoldRateValidationError(err error) bool {
	switch err {
	case goldratedomain.ErrInvalidPurity,
		goldratedomain.ErrInvalidPrice:
		return true
	default:
		return false
	}
}

func isDiamondRateValidationError(err error) bool {
	switch err {
	case diamondratedomain.ErrInvalidClarity,
		diamondratedomain.ErrInvalidPrice:
		return true
	default:
		return false
	}
}
