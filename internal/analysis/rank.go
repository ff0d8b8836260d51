package analysis

import "sort"

// RankedMonth is one month's rate with its position after sorting.
type RankedMonth struct {
	Rank  int     `json:"rank"`
	Month string  `json:"month"`
	Rate  float64 `json:"rate"` // g/kWh
}

// RankMonthsByRate sorts months ascending by benchmark rate, best (lowest
// consumption) first. Ties break on month name so the ordering is stable
// across runs.
func RankMonthsByRate(rates map[string]float64) []RankedMonth {
	out := make([]RankedMonth, 0, len(rates))
	for month, rate := range rates {
		out = append(out, RankedMonth{Month: month, Rate: rate})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate < out[j].Rate
		}
		return out[i].Month < out[j].Month
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
