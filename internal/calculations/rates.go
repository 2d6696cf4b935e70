package calculations

import (
	"math"
	"sort"
)

// RateBand is a credit-score bucket that maps to a fixed APR.
type RateBand string

const (
	BandExcellent     RateBand = "excellent"
	BandGreat         RateBand = "great"
	BandVeryGood      RateBand = "very_good"
	BandGood          RateBand = "good"
	BandFair          RateBand = "fair"
	BandPoor          RateBand = "poor"
	BandVeryPoor      RateBand = "very_poor"
	BandExtremelyPoor RateBand = "extremely_poor"
	BandUnknown       RateBand = "unknown"
)

const (
	// MaxAPR is the policy ceiling for any resolved rate.
	MaxAPR = 0.18
	// MinAPR is the floor for any resolved rate.
	MinAPR = 0.0

	DefaultCreditScore = 700
	MinCreditScore     = 300
	MaxCreditScore     = 850
)

// BandRate is one row of a rate table.
type BandRate struct {
	Band     RateBand `toml:"band"`
	MinScore int      `toml:"min_score"`
	Label    string   `toml:"label"`
	Rate     float64  `toml:"rate"`
	// LongTermRate applies to terms at or above RateTable.LongTermFrom.
	// Zero means the band has no long-term pricing and Rate is used.
	LongTermRate float64 `toml:"long_term_rate"`
}

// RateTable maps (credit score, term) to an APR. Bands are matched first-match
// descending on MinScore.
type RateTable struct {
	Name  string
	Bands []BandRate
	// LongTermFrom is the term (months) from which LongTermRate applies.
	// Zero makes the table term-insensitive.
	LongTermFrom int
}

// FiveBandTable is the coarse table used by the original results screen.
func FiveBandTable() RateTable {
	return RateTable{
		Name: "five-band",
		Bands: []BandRate{
			{Band: BandExcellent, MinScore: 800, Label: "Excellent (800+)", Rate: 0.0299},
			{Band: BandVeryGood, MinScore: 740, Label: "Very Good (740-799)", Rate: 0.0399},
			{Band: BandGood, MinScore: 670, Label: "Good (670-739)", Rate: 0.0599},
			{Band: BandFair, MinScore: 580, Label: "Fair (580-669)", Rate: 0.0799},
			{Band: BandPoor, MinScore: 300, Label: "Poor (300-579)", Rate: 0.1199},
		},
	}
}

var eightBands = []BandRate{
	{Band: BandExcellent, MinScore: 720, Label: "Excellent (720+)", Rate: 0.0872, LongTermRate: 0.0972},
	{Band: BandGreat, MinScore: 690, Label: "Great (690-719)", Rate: 0.0949, LongTermRate: 0.1049},
	{Band: BandVeryGood, MinScore: 670, Label: "Very Good (670-689)", Rate: 0.1029, LongTermRate: 0.1129},
	{Band: BandGood, MinScore: 650, Label: "Good (650-669)", Rate: 0.1138, LongTermRate: 0.1238},
	{Band: BandFair, MinScore: 630, Label: "Fair (630-649)", Rate: 0.1247, LongTermRate: 0.1347},
	{Band: BandPoor, MinScore: 610, Label: "Poor (610-629)", Rate: 0.1359, LongTermRate: 0.1459},
	{Band: BandVeryPoor, MinScore: 580, Label: "Very Poor (580-609)", Rate: 0.1499, LongTermRate: 0.1599},
	{Band: BandExtremelyPoor, MinScore: 520, Label: "Extremely Poor (520-579)", Rate: 0.1649, LongTermRate: 0.1800},
}

// EightBandTable prices 72 months and longer from a separate, higher schedule.
func EightBandTable() RateTable {
	bands := make([]BandRate, len(eightBands))
	copy(bands, eightBands)
	return RateTable{Name: "eight-band", Bands: bands, LongTermFrom: 72}
}

// FlatEightBandTable uses the eight credit bands without term sensitivity.
func FlatEightBandTable() RateTable {
	bands := make([]BandRate, len(eightBands))
	for i, b := range eightBands {
		b.LongTermRate = 0
		bands[i] = b
	}
	return RateTable{Name: "eight-band-flat", Bands: bands}
}

// NormalizeCreditScore maps a missing score (0) to DefaultCreditScore and caps
// scores above MaxCreditScore. Scores below MinCreditScore are returned as-is and
// resolve to BandUnknown.
func NormalizeCreditScore(score int) int {
	switch {
	case score == 0:
		return DefaultCreditScore
	case score > MaxCreditScore:
		return MaxCreditScore
	default:
		return score
	}
}

// Lookup returns the matching row for score. The second result is false when the
// score is out of range; the returned row is then the worst-priced band.
func (t RateTable) Lookup(score int) (BandRate, bool) {
	if len(t.Bands) == 0 {
		return BandRate{Band: BandUnknown, Label: "Unknown", Rate: MaxAPR}, false
	}
	score = NormalizeCreditScore(score)
	if score >= MinCreditScore {
		for _, b := range t.Bands {
			if score >= b.MinScore {
				return b, true
			}
		}
		// Below the lowest threshold but still a real score.
		return t.Bands[len(t.Bands)-1], true
	}
	worst := t.Bands[len(t.Bands)-1]
	worst.Band = BandUnknown
	worst.Label = "Unknown"
	return worst, false
}

// Band returns the credit band for score.
func (t RateTable) Band(score int) RateBand {
	b, _ := t.Lookup(score)
	return b.Band
}

// Label returns the display label for score, e.g. "Great (690-719)".
func (t RateTable) Label(score int) string {
	b, _ := t.Lookup(score)
	return b.Label
}

// ResolveAPR returns the APR for a credit score, term and plan type, clamped to
// [MinAPR, MaxAPR]. Out-of-range scores get the worst rate for the term.
func (t RateTable) ResolveAPR(score, termMonths int, plan PlanType) float64 {
	if plan == PlanLease && termMonths > MaxLeaseTerm {
		termMonths = DefaultTermMonths
	}
	if len(t.Bands) == 0 {
		return MaxAPR
	}
	b, ok := t.Lookup(score)
	if !ok {
		return clampAPR(t.worstRate(termMonths))
	}
	return clampAPR(t.rateFor(b, termMonths))
}

func (t RateTable) rateFor(b BandRate, termMonths int) float64 {
	if t.LongTermFrom > 0 && termMonths >= t.LongTermFrom && b.LongTermRate > 0 {
		return b.LongTermRate
	}
	return b.Rate
}

func (t RateTable) worstRate(termMonths int) float64 {
	worst := 0.0
	for _, b := range t.Bands {
		if r := t.rateFor(b, termMonths); r > worst {
			worst = r
		}
	}
	return worst
}

// Sanitized returns a copy with bands sorted by descending MinScore and every
// rate clamped to [MinAPR, MaxAPR]. Use it for tables loaded from files.
func (t RateTable) Sanitized() RateTable {
	bands := make([]BandRate, len(t.Bands))
	copy(bands, t.Bands)
	sort.SliceStable(bands, func(i, j int) bool { return bands[i].MinScore > bands[j].MinScore })
	for i := range bands {
		bands[i].Rate = clampAPR(bands[i].Rate)
		if bands[i].LongTermRate != 0 {
			bands[i].LongTermRate = clampAPR(bands[i].LongTermRate)
		}
		if bands[i].Label == "" {
			bands[i].Label = string(bands[i].Band)
		}
	}
	t.Bands = bands
	return t
}

func clampAPR(rate float64) float64 {
	if math.IsNaN(rate) || rate < MinAPR {
		return MinAPR
	}
	if rate > MaxAPR {
		return MaxAPR
	}
	return rate
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
