package config

import (
	"fmt"

	"github.com/aalvaropc/seqtools/internal/domain"
)

func mapConfig(path string, dto YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if dto.FillQuality != "" {
		if len(dto.FillQuality) != 1 || dto.FillQuality[0] < '!' || dto.FillQuality[0] > '~' {
			return domain.Config{}, invalidField(path, "fill_quality", "must be a single printable ASCII character")
		}
		cfg.FillQuality = dto.FillQuality[0]
	}

	if dto.HistogramWidth != nil {
		if *dto.HistogramWidth < 10 {
			return domain.Config{}, invalidField(path, "histogram_width", "must be at least 10")
		}
		cfg.HistogramWidth = *dto.HistogramWidth
	}

	if dto.Random.Num != nil {
		if *dto.Random.Num < 0 {
			return domain.Config{}, invalidField(path, "random.num", "must not be negative")
		}
		cfg.Random.Num = *dto.Random.Num
	}
	if dto.Random.Len != nil {
		if *dto.Random.Len < 0 {
			return domain.Config{}, invalidField(path, "random.len", "must not be negative")
		}
		cfg.Random.Len = *dto.Random.Len
	}
	if dto.Random.Std != nil {
		if *dto.Random.Std < 0 {
			return domain.Config{}, invalidField(path, "random.std", "must not be negative")
		}
		cfg.Random.Std = *dto.Random.Std
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindIO,
		Err:  fmt.Errorf("%s: field %s: %s", path, field, msg),
	}
}
