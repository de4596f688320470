package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wagerpool_backend/internal/gameerr"
	"wagerpool_backend/internal/model"
)

// NewProtocolConfigFromYAML loads the protocol settings from a YAML file,
// applying them over the protocol defaults. Values left out of the file keep
// their defaults.
func NewProtocolConfigFromYAML(path string) (model.ProtocolConfig, error) {
	cfg := model.DefaultProtocolConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read protocol config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse protocol config: %w", err)
	}

	if err := validateProtocolConfig(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func validateProtocolConfig(cfg model.ProtocolConfig) error {
	if err := cfg.JackpotSplit.Validate(); err != nil {
		return err
	}
	for name, bps := range map[string]uint64{
		"protocol_fee_bps":      cfg.ProtocolFeeBps,
		"default_pool_fee_bps":  cfg.DefaultPoolFeeBps,
		"max_creator_fee_bps":   cfg.MaxCreatorFeeBps,
		"max_house_edge_bps":    cfg.MaxHouseEdgeBps,
		"max_payout_bps":        cfg.MaxPayoutBps,
		"pool_withdraw_fee_bps": cfg.PoolWithdrawFeeBps,
	} {
		if bps > 10_000 {
			return fmt.Errorf("%s is %d: %w", name, bps, gameerr.ErrFeeOutOfBounds)
		}
	}
	if cfg.BonusToJackpotRatioBps > 10_000 {
		return fmt.Errorf("bonus_to_jackpot_ratio_bps is %d: %w", cfg.BonusToJackpotRatioBps, gameerr.ErrFeeOutOfBounds)
	}
	if cfg.BaseJackpotProbUbps > 1_000_000 {
		return fmt.Errorf("base_jackpot_probability_ubps is %d: %w", cfg.BaseJackpotProbUbps, gameerr.ErrFeeOutOfBounds)
	}
	return nil
}
