package game

// levelThresholds is ascending; crossing threshold i puts the user at level
// i+2 (level 1 is the floor). Eleven levels total.
var levelThresholds = []int{50, 150, 300, 500, 750, 1050, 1400, 1800, 2250, 2750}

// MaxLevel is the level reached at the last threshold.
const MaxLevel = 11

// LevelFor maps a cumulative point total to a level in [1, MaxLevel].
func LevelFor(points int) int {
	level := 1
	for _, threshold := range levelThresholds {
		if points < threshold {
			break
		}
		level++
	}
	return level
}
