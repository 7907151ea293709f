package schedule

import "sort"

const (
	// DefaultTargetMaxHours is the per-day load Balance steers toward.
	DefaultTargetMaxHours = 4.0

	// balanceLookaheadDays bounds how far forward a block may be pushed.
	balanceLookaheadDays = 7
)

// Balance relieves overloaded days by moving unlocked blocks (lowest
// priority first) to the nearest day within a 7-day lookahead whose
// projected load stays under target. Days that cannot be relieved (every
// block locked, or no destination under target) are left over target;
// that is an accepted limitation, not a failure.
//
// The input slice is not modified; the returned slice holds the adjusted
// placement.
func Balance(blocks []Block, targetMaxHoursPerDay float64) []Block {
	if targetMaxHoursPerDay <= 0 {
		targetMaxHoursPerDay = DefaultTargetMaxHours
	}

	out := make([]Block, len(blocks))
	copy(out, blocks)

	loads := make(map[string]float64)
	for i := range out {
		loads[out[i].DayKey()] += out[i].Hours()
	}

	days := make([]string, 0, len(loads))
	for key := range loads {
		days = append(days, key)
	}
	sort.Strings(days)

	for _, dayKey := range days {
		if loads[dayKey] <= targetMaxHoursPerDay {
			continue
		}

		// Movable blocks on this day, lowest priority first. Ties keep
		// the shortest block first so small moves are preferred.
		var candidates []int
		for i := range out {
			if out[i].DayKey() == dayKey && !out[i].Locked {
				candidates = append(candidates, i)
			}
		}
		sort.Slice(candidates, func(a, b int) bool {
			ba, bb := &out[candidates[a]], &out[candidates[b]]
			if ba.Priority.Rank() != bb.Priority.Rank() {
				return ba.Priority.Rank() < bb.Priority.Rank()
			}
			return ba.Duration < bb.Duration
		})

		for _, idx := range candidates {
			if loads[dayKey] <= targetMaxHoursPerDay {
				break
			}
			b := &out[idx]
			for offset := 1; offset <= balanceLookaheadDays; offset++ {
				dest := b.Date.AddDate(0, 0, offset)
				destKey := dest.Format("2006-01-02")
				if loads[destKey]+b.Hours() > targetMaxHoursPerDay {
					continue
				}
				loads[dayKey] -= b.Hours()
				loads[destKey] += b.Hours()
				b.Date = dest
				break
			}
		}
	}

	return out
}
