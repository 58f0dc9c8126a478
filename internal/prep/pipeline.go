package prep

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arialab/rentprep/internal/model"
	"github.com/arialab/rentprep/internal/refdata"
)

// CategoricalColumns are the output columns a downstream model should treat
// as categories. Missing values in them are written as "missing".
var CategoricalColumns = []string{"district", "Direction", "nearest_line_name"}

const missingCategory = "missing"

// Pipeline runs the full preprocessing over combined train and test rows.
type Pipeline struct {
	Geo  refdata.GeoTable
	Land refdata.LandPriceTable

	ContractBaseYear  int
	ContractBaseMonth int

	ReconcileTolerance   float64
	OutlierMaxAgeMonths  int
	OutlierMaxUnitTarget float64
}

// Run preprocesses the two tables together and splits the result back into
// a train table (every row with a target, including test rows whose target
// was reconciled) and a test table. Test rows are never dropped.
func (p *Pipeline) Run(ctx context.Context, train, test []*model.Listing) (trainOut, testOut []*model.Listing, err error) {
	log := zap.L().With(
		zap.String("component", "pipeline"),
		zap.String("run_id", uuid.NewString()),
	)
	log.Info("preprocessing started",
		zap.Int("train_rows", len(train)),
		zap.Int("test_rows", len(test)),
	)

	rows := make([]*model.Listing, 0, len(train)+len(test))
	rows = append(rows, train...)
	rows = append(rows, test...)

	ApplyCorrections(rows)

	// Extractors own disjoint columns of the same rows, so they run
	// concurrently with a barrier before the cross-column stages.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { ExtractLocation(rows, p.Geo, p.Land); return nil })
	g.Go(func() error { ExtractAccess(rows); return nil })
	g.Go(func() error { ExtractFloorPlan(rows); return nil })
	g.Go(func() error { ExtractAge(rows); return nil })
	g.Go(func() error { ExtractArea(rows); return nil })
	g.Go(func() error { ExtractStoryAndFloor(rows); return nil })
	g.Go(func() error { ExtractBathToilet(rows); return nil })
	g.Go(func() error { ExtractBroadcasting(rows); return nil })
	g.Go(func() error { ExtractKitchen(rows); return nil })
	g.Go(func() error { ExtractIndoorFacilities(rows); return nil })
	g.Go(func() error { ExtractParking(rows); return nil })
	g.Go(func() error { ExtractEnvironment(rows); return nil })
	g.Go(func() error { ExtractArchitecture(rows); return nil })
	g.Go(func() error { ExtractContract(rows, p.ContractBaseYear, p.ContractBaseMonth); return nil })
	if err := g.Wait(); err != nil {
		return nil, nil, eris.Wrap(err, "prep: extract")
	}

	ReconcileTargets(rows, p.ReconcileTolerance)
	ComposeFeatures(rows)
	rows = FilterOutliers(rows, p.OutlierMaxAgeMonths, p.OutlierMaxUnitTarget)

	for _, r := range rows {
		r.Location = ""
		r.DetailedDistrict = ""
		if r.District == "" {
			r.District = missingCategory
		}
		if r.Direction == "" {
			r.Direction = missingCategory
		}
		if r.NearestLineName == "" {
			r.NearestLineName = missingCategory
		}
	}

	for _, r := range rows {
		if r.Target != nil {
			trainOut = append(trainOut, r)
		}
		if !r.IsTrain {
			testOut = append(testOut, r)
		}
	}
	if len(testOut) != len(test) {
		return nil, nil, eris.Errorf("prep: test rows not preserved: had %d, got %d", len(test), len(testOut))
	}

	log.Info("preprocessing finished",
		zap.Int("train_rows", len(trainOut)),
		zap.Int("test_rows", len(testOut)),
	)
	return trainOut, testOut, nil
}
