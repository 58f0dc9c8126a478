package prep

import (
	"go.uber.org/zap"

	"github.com/arialab/rentprep/internal/model"
)

// targetKey identifies the same physical unit across the train and test
// tables: normalized address, floor area, building height and basement
// depth. Rows missing area or height never join.
type targetKey struct {
	location string
	area     float64
	maxFloor int
	under    int
}

// ReconcileTargets fills test-row targets from train rows describing the
// same unit. When several train rows match, their rents must agree within
// the tolerance ratio (max/min) to be trusted; the filled value is the
// mean. Disagreeing candidates leave the target nil.
func ReconcileTargets(rows []*model.Listing, tolerance float64) {
	groups := make(map[targetKey][]float64)
	for _, r := range rows {
		if !r.IsTrain || r.Target == nil || r.Area == nil || r.MaxFloor == nil {
			continue
		}
		k := targetKey{r.Location, *r.Area, *r.MaxFloor, r.HavingUnderFloor}
		groups[k] = append(groups[k], *r.Target)
	}

	filled := 0
	for _, r := range rows {
		if r.IsTrain || r.Area == nil || r.MaxFloor == nil {
			continue
		}
		cands := groups[targetKey{r.Location, *r.Area, *r.MaxFloor, r.HavingUnderFloor}]
		if len(cands) == 0 {
			continue
		}

		min, max, sum := cands[0], cands[0], 0.0
		for _, c := range cands {
			if c < min {
				min = c
			}
			if c > max {
				max = c
			}
			sum += c
		}
		if min > 0 && max/min <= tolerance {
			r.Target = model.Float(sum / float64(len(cands)))
			filled++
		}
	}

	zap.L().Info("targets reconciled", zap.Int("filled", filled), zap.Int("groups", len(groups)))
}
