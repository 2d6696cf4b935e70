package calculations

// FeeScheme computes the taxes and fees added to a vehicle price. Two schemes are
// in use and neither is canonical, so callers pick one by name.
type FeeScheme struct {
	Name    string  `toml:"name"`
	Percent float64 `toml:"percent"`
	Flat    float64 `toml:"flat"`
}

// NoFees adds nothing to the price.
func NoFees() FeeScheme {
	return FeeScheme{Name: "none"}
}

// FlatPercentFees charges 8% of the price.
func FlatPercentFees() FeeScheme {
	return FeeScheme{Name: "flat-8", Percent: 0.08}
}

// PercentPlusFlatFees charges 8.5% of the price plus a $500 flat fee.
func PercentPlusFlatFees() FeeScheme {
	return FeeScheme{Name: "percent-8.5-plus-500", Percent: 0.085, Flat: 500}
}

// TaxesAndFees returns the fees owed on price. A non-positive price owes nothing.
func (s FeeScheme) TaxesAndFees(price float64) float64 {
	if price <= 0 {
		return 0
	}
	return price*s.Percent + s.Flat
}
