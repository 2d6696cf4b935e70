package calculations

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownProfile is returned when a pricing profile name is not recognised.
var ErrUnknownProfile = errors.New("unknown pricing profile")

const (
	ProfileSimple     = "simple"
	ProfileStandard   = "standard"
	ProfileComparison = "comparison"
)

// Profile bundles the rate table, fee scheme and lease terms used to price a plan.
// The schemes differ between screens, so each combination is a named profile
// chosen when an Engine is built.
type Profile struct {
	Name  string
	Rates RateTable
	Fees  FeeScheme
	Lease LeaseTerms
}

// SimpleProfile: five credit bands, no fees, 50% residual.
func SimpleProfile() Profile {
	return Profile{
		Name:  ProfileSimple,
		Rates: FiveBandTable(),
		Fees:  NoFees(),
		Lease: LeaseTerms{ResidualPct: 0.50},
	}
}

// StandardProfile: eight credit bands with long-term pricing, flat 8% fees,
// 50% residual and no mileage surcharge.
func StandardProfile() Profile {
	return Profile{
		Name:  ProfileStandard,
		Rates: EightBandTable(),
		Fees:  FlatPercentFees(),
		Lease: LeaseTerms{ResidualPct: 0.50},
	}
}

// ComparisonProfile: flat eight-band rates, 8.5% + $500 fees, 55% residual and
// the mileage surcharge.
func ComparisonProfile() Profile {
	return Profile{
		Name:  ProfileComparison,
		Rates: FlatEightBandTable(),
		Fees:  PercentPlusFlatFees(),
		Lease: LeaseTerms{ResidualPct: 0.55, MileageAdjustment: true},
	}
}

var builtinProfiles = map[string]func() Profile{
	ProfileSimple:     SimpleProfile,
	ProfileStandard:   StandardProfile,
	ProfileComparison: ComparisonProfile,
}

// ProfileByName returns a built-in profile.
func ProfileByName(name string) (Profile, error) {
	build, ok := builtinProfiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return build(), nil
}

// ProfileNames lists the built-in profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
