// Package game holds the pure scoring rules: point-to-rank and
// point-to-level mappings and derived attribute stats. Nothing here touches
// storage; callers recompute on every points change.
package game

// RankUnranked is returned only if the band table had a gap. The table is
// contiguous from 0 to RankCap, so it is unreachable for sane inputs.
const RankUnranked = "Unranked"

// RankCap is the inclusive upper bound of the top band.
const RankCap = 99999999

type rankBand struct {
	label string
	low   int
	high  int
}

// Bands are ordered and contiguous. First match wins.
var rankBands = []rankBand{
	{"E", 0, 999},
	{"E+", 1000, 1999},
	{"E++", 2000, 2999},
	{"D", 3000, 4999},
	{"D+", 5000, 6999},
	{"D++", 7000, 8999},
	{"C", 9000, 11999},
	{"C+", 12000, 14999},
	{"C++", 15000, 17999},
	{"B", 18000, 21999},
	{"B+", 22000, 25999},
	{"B++", 26000, 29999},
	{"A", 30000, 34999},
	{"A+", 35000, 39999},
	{"A++", 40000, 44999},
	{"S", 45000, 49999},
	{"S+", 50000, 59999},
	{"SS", 60000, 69999},
	{"SS+", 70000, 79999},
	{"SSS", 80000, 89999},
	{"National Rank", 90000, RankCap},
}

// RankFor maps a cumulative point total to its rank label.
func RankFor(points int) string {
	for _, band := range rankBands {
		if points >= band.low && points <= band.high {
			return band.label
		}
	}
	if points > RankCap {
		return rankBands[len(rankBands)-1].label
	}
	return RankUnranked
}
