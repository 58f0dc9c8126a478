package prep

import (
	"go.uber.org/zap"

	"github.com/arialab/rentprep/internal/model"
)

// FilterOutliers drops train rows with implausible values: buildings older
// than the age cap or rents above the per-square-meter cap. Test rows are
// never dropped.
func FilterOutliers(rows []*model.Listing, maxAgeMonths int, maxUnitTarget float64) []*model.Listing {
	kept := make([]*model.Listing, 0, len(rows))
	for _, r := range rows {
		if r.IsTrain {
			if r.TotalMonths >= maxAgeMonths {
				continue
			}
			if r.UnitTarget != nil && *r.UnitTarget > maxUnitTarget {
				continue
			}
		}
		kept = append(kept, r)
	}

	if dropped := len(rows) - len(kept); dropped > 0 {
		zap.L().Info("outlier rows dropped", zap.Int("dropped", dropped))
	}
	return kept
}
