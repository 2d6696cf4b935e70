package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/cloud-ru/autobudget-go/internal/calculations"
)

// ProfileFile is the on-disk form of a custom pricing profile.
type ProfileFile struct {
	Name              string                  `toml:"name"`
	ResidualPct       float64                 `toml:"residual_pct"`
	MileageAdjustment bool                    `toml:"mileage_adjustment"`
	LongTermFrom      int                     `toml:"long_term_from"`
	Fees              calculations.FeeScheme  `toml:"fees"`
	Bands             []calculations.BandRate `toml:"bands"`
}

// DecodeProfile parses a TOML pricing profile. Rates above the APR ceiling or
// below zero are clamped.
func DecodeProfile(data string) (calculations.Profile, error) {
	var pf ProfileFile
	if _, err := toml.Decode(data, &pf); err != nil {
		return calculations.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return pf.toProfile()
}

// LoadProfileFile reads a TOML pricing profile from path.
func LoadProfileFile(path string) (calculations.Profile, error) {
	var pf ProfileFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return calculations.Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	return pf.toProfile()
}

func (pf ProfileFile) toProfile() (calculations.Profile, error) {
	if pf.Name == "" {
		return calculations.Profile{}, fmt.Errorf("profile: name is required")
	}
	if len(pf.Bands) == 0 {
		return calculations.Profile{}, fmt.Errorf("profile %q: at least one band is required", pf.Name)
	}
	if pf.ResidualPct < 0 || pf.ResidualPct >= 1 {
		return calculations.Profile{}, fmt.Errorf("profile %q: residual_pct must be in [0, 1)", pf.Name)
	}
	if pf.Fees.Percent < 0 || pf.Fees.Flat < 0 {
		return calculations.Profile{}, fmt.Errorf("profile %q: fees must not be negative", pf.Name)
	}
	if pf.Fees.Name == "" {
		pf.Fees.Name = pf.Name
	}

	table := calculations.RateTable{
		Name:         pf.Name,
		Bands:        pf.Bands,
		LongTermFrom: pf.LongTermFrom,
	}.Sanitized()

	return calculations.Profile{
		Name:  pf.Name,
		Rates: table,
		Fees:  pf.Fees,
		Lease: calculations.LeaseTerms{
			ResidualPct:       pf.ResidualPct,
			MileageAdjustment: pf.MileageAdjustment,
		},
	}, nil
}

// Profile resolves the pricing profile: PROFILE_FILE when set, otherwise the
// built-in named by PRICING_PROFILE.
func (c *Config) Profile() (calculations.Profile, error) {
	if c.ProfileFile != "" {
		return LoadProfileFile(c.ProfileFile)
	}
	return calculations.ProfileByName(c.PricingProfile)
}
