package service

import (
	"context"

	"github.com/aurelia-jewels/aurelia/internal/clock"
	"github.com/aurelia-jewels/aurelia/internal/inventory/domain"
	pricingdomain "github.com/aurelia-jewels/aurelia/internal/pricing/domain"
	productdomain "github.com/aurelia-jewels/aurelia/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Clock    clock.Clock
	Products productdomain.Repository
	Pricing  pricingdomain.Service
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	products productdomain.Repository
	pricing  pricingdomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("inventory.service"),
		clock:    p.Clock,
		products: p.Products,
		pricing:  p.Pricing,
	}
}

func (s *Service) Valuation(ctx context.Context) (*domain.Valuation, error) {
	products, err := s.products.FindAllActive(ctx, s.db)
	if err != nil {
		s.log.Error("failed to list active products", zap.Error(err))
		return nil, err
	}

	items := make([]pricingdomain.Item, 0, len(products))
	for _, p := range products {
		items = append(items, pricingdomain.Item{
			GoldPurity: p.GoldPurity,
			GoldWeight: p.GoldWeight,
			Clarity:    p.Clarity,
			Carat:      p.Carat,
		})
	}

	breakdowns, err := s.pricing.QuoteAll(ctx, items)
	if err != nil {
		return nil, err
	}

	valuation := &domain.Valuation{
		TotalItems: len(products),
		ValidAsOf:  s.clock.Now(),
		Lines:      make([]domain.Line, 0, len(products)),
	}
	for i, b := range breakdowns {
		valuation.TotalGoldValue += b.GoldValue
		valuation.TotalDiamondValue += b.DiamondValue
		valuation.TotalMaking += b.MakingCharges
		valuation.TotalOther += b.OtherCharges
		valuation.TotalGST += b.GST
		valuation.TotalValue += b.FinalPrice
		valuation.Lines = append(valuation.Lines, domain.Line{
			ProductID:  products[i].ID.String(),
			SKU:        products[i].SKU,
			Name:       products[i].Name,
			FinalPrice: b.FinalPrice,
		})
	}
	return valuation, nil
}
