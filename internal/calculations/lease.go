package calculations

const (
	// IncludedAnnualMileage is the mileage allowance priced into every lease.
	IncludedAnnualMileage = 12000
	// OverageRatePerMile is charged per mile above the allowance.
	OverageRatePerMile = 0.25
)

// LeaseTerms configures how a lease is priced.
type LeaseTerms struct {
	ResidualPct       float64
	MileageAdjustment bool
}

// Lease is the result of pricing a lease.
type Lease struct {
	ResidualValue        float64
	MonthlyDepreciation  float64
	MonthlyFinanceCharge float64
	MileageAdjustment    float64
	MonthlyPayment       float64
	TotalCost            float64
}

// MileageSurcharge is the monthly charge for driving more than the allowance.
func MileageSurcharge(annualMileage int) float64 {
	if annualMileage <= IncludedAnnualMileage {
		return 0
	}
	return float64(annualMileage-IncludedAnnualMileage) * OverageRatePerMile / 12.0
}

// PriceLease computes a depreciation-based lease payment. The finance charge is
// (price + residual) * apr/12, applied directly rather than through a money factor.
func PriceLease(price, apr float64, termMonths int, terms LeaseTerms, annualMileage int, downPayment float64) Lease {
	if price < 0 {
		price = 0
	}
	if termMonths <= 0 {
		return Lease{TotalCost: downPayment}
	}
	residual := price * terms.ResidualPct
	depreciation := (price - residual) / float64(termMonths)
	finance := (price + residual) * (apr / 12.0)
	mileage := 0.0
	if terms.MileageAdjustment {
		mileage = MileageSurcharge(annualMileage)
	}
	monthly := depreciation + finance + mileage
	return Lease{
		ResidualValue:        residual,
		MonthlyDepreciation:  depreciation,
		MonthlyFinanceCharge: finance,
		MileageAdjustment:    mileage,
		MonthlyPayment:       monthly,
		TotalCost:            monthly*float64(termMonths) + downPayment,
	}
}
