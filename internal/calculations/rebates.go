package calculations

// RebateAmount is the fixed discount granted by each qualifying rebate.
const RebateAmount = 500.0

// Total returns the combined discount of all active rebates.
func (r Rebates) Total() float64 {
	total := 0.0
	if r.Military {
		total += RebateAmount
	}
	if r.College {
		total += RebateAmount
	}
	return total
}

// EffectivePrice applies rebates to msrp, never going below zero.
func EffectivePrice(msrp float64, rebates Rebates) float64 {
	price := msrp - rebates.Total()
	if price < 0 {
		return 0
	}
	return price
}
