package config

import (
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// PricingConfig controls resolver policy knobs that operators may tune
// without a redeploy.
type PricingConfig struct {
	// GatePerUnitCharges requires PER_GRAM charges to declare
	// apply_on=GOLD_VALUE and PER_CARAT charges apply_on=DIAMOND_VALUE
	// before they contribute. When false, per-unit charges apply
	// regardless of apply_on.
	GatePerUnitCharges bool `mapstructure:"gatePerUnitCharges"`
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		GatePerUnitCharges: true,
	}
}

// PricingConfigHolder exposes the current pricing policy with hot reload.
type PricingConfigHolder struct {
	current atomic.Value // holds PricingConfig
}

func NewPricingConfigHolder() (*PricingConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("pricing")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/aurelia/config") // Volume-mounted config
	v.AddConfigPath("/etc/aurelia")            // System config
	v.AddConfigPath(".")                       // Current directory (dev mode)

	v.SetEnvPrefix("AURELIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultPricingConfig()
	v.SetDefault("pricing.gatePerUnitCharges", defaults.GatePerUnitCharges)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg PricingConfig
	if err := v.UnmarshalKey("pricing", &cfg); err != nil {
		return nil, err
	}

	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		var next PricingConfig
		if err := v.UnmarshalKey("pricing", &next); err != nil {
			log.Printf("pricing config reload failed: %v", err)
			return
		}
		holder.current.Store(next)
	})

	return holder, nil
}

// Current returns the active pricing policy.
func (h *PricingConfigHolder) Current() PricingConfig {
	if h == nil {
		return DefaultPricingConfig()
	}
	cfg, ok := h.current.Load().(PricingConfig)
	if !ok {
		return DefaultPricingConfig()
	}
	return cfg
}

// StaticPricingConfigHolder returns a holder pinned to cfg. Used by tests.
func StaticPricingConfigHolder(cfg PricingConfig) *PricingConfigHolder {
	holder := &PricingConfigHolder{}
	holder.current.Store(cfg)
	return holder
}
