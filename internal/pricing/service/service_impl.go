package service

import (
	"context"

	chargedomain "github.com/aurelia-jewels/aurelia/internal/charge/domain"
	"github.com/aurelia-jewels/aurelia/internal/clock"
	"github.com/aurelia-jewels/aurelia/internal/config"
	diamondratedomain "github.com/aurelia-jewels/aurelia/internal/diamondrate/domain"
	goldratedomain "github.com/aurelia-jewels/aurelia/internal/goldrate/domain"
	"github.com/aurelia-jewels/aurelia/internal/pricing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	Pricing      *config.PricingConfigHolder
	GoldRates    goldratedomain.Repository
	DiamondRates diamondratedomain.Repository
	Charges      chargedomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	pricing      *config.PricingConfigHolder
	goldRates    goldratedomain.Repository
	diamondRates diamondratedomain.Repository
	charges      chargedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("pricing.service"),
		clock:        p.Clock,
		pricing:      p.Pricing,
		goldRates:    p.GoldRates,
		diamondRates: p.DiamondRates,
		charges:      p.Charges,
	}
}

func (s *Service) Quote(ctx context.Context, item domain.Item) (*domain.Breakdown, error) {
	charges, err := s.charges.ListActive(ctx, s.db)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.quote(ctx, item, charges)
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

// QuoteAll prices a product list. The charge table is read once per
// batch; rate rows are fetched per item, which is fine at catalog
// scale but worth revisiting with a keyed preload for larger catalogs.
func (s *Service) QuoteAll(ctx context.Context, items []domain.Item) ([]domain.Breakdown, error) {
	charges, err := s.charges.ListActive(ctx, s.db)
	if err != nil {
		return nil, err
	}

	breakdowns := make([]domain.Breakdown, 0, len(items))
	for _, item := range items {
		breakdown, err := s.quote(ctx, item, charges)
		if err != nil {
			return nil, err
		}
		breakdowns = append(breakdowns, *breakdown)
	}
	return breakdowns, nil
}

func (s *Service) quote(ctx context.Context, item domain.Item, charges []chargedomain.Charge) (*domain.Breakdown, error) {
	var goldRate *float64
	row, err := s.goldRates.FindActiveByPurity(ctx, s.db, item.GoldPurity)
	if err != nil {
		return nil, err
	}
	if row != nil {
		goldRate = &row.PricePer10g
	}

	var diamondRate *float64
	if clarity := diamondratedomain.NormalizeClarity(item.Clarity); clarity != "" {
		row, err := s.diamondRates.FindActiveByClarity(ctx, s.db, clarity)
		if err != nil {
			return nil, err
		}
		if row != nil {
			diamondRate = &row.PricePerCarat
		}
	}

	policy := domain.Policy{
		GatePerUnitCharges: s.pricing.Current().GatePerUnitCharges,
	}

	breakdown := Resolve(item, goldRate, diamondRate, charges, policy, s.clock.Now())
	return &breakdown, nil
}
