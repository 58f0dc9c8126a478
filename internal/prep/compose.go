package prep

import (
	"github.com/arialab/rentprep/internal/model"
)

// Thresholds for the vintage flag and the age clamp on large units.
const (
	vintageMinArea       = 100.0
	vintageMinMonths     = 40
	vintageMinEquipments = 4
	largeUnitMinMonths   = 15
)

// ComposeFeatures derives cross-column features once every extractor has
// run: the vintage flag, the age clamp for large units, rent per square
// meter, and inverse-square-distance potentials toward the Minato and Chuo
// ward centroids.
func ComposeFeatures(rows []*model.Listing) {
	for _, row := range rows {
		if row.Area != nil && *row.Area > vintageMinArea {
			if row.TotalMonths > vintageMinMonths && row.NumOfEquipments > vintageMinEquipments {
				row.IsVintage = 1
			}
			// Large listed-as-new units are invariably under renovation,
			// not new builds.
			if row.TotalMonths < largeUnitMinMonths {
				row.TotalMonths = largeUnitMinMonths
			}
		}
		if row.Target != nil && row.Area != nil && *row.Area != 0 {
			row.UnitTarget = model.Float(*row.Target / *row.Area)
		}
	}

	if lat, lon, ok := wardCentroid(rows, "港"); ok {
		for _, row := range rows {
			row.MinatoPotential = potential(row, lat, lon)
		}
	}
	if lat, lon, ok := wardCentroid(rows, "中央"); ok {
		for _, row := range rows {
			row.ChuoPotential = potential(row, lat, lon)
		}
	}
}

// wardCentroid averages the coordinates of all rows in the ward. ok is
// false when no row in the ward is geocoded.
func wardCentroid(rows []*model.Listing, ward string) (lat, lon float64, ok bool) {
	var sumLat, sumLon float64
	n := 0
	for _, r := range rows {
		if r.District != ward || r.Latitude == nil || r.Longitude == nil {
			continue
		}
		sumLat += *r.Latitude
		sumLon += *r.Longitude
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return sumLat / float64(n), sumLon / float64(n), true
}

// potential is the inverse squared distance to the centroid. A row sitting
// exactly on the centroid has no finite potential and stays nil.
func potential(row *model.Listing, lat, lon float64) *float64 {
	if row.Latitude == nil || row.Longitude == nil {
		return nil
	}
	dLat := *row.Latitude - lat
	dLon := *row.Longitude - lon
	d2 := dLat*dLat + dLon*dLon
	if d2 == 0 {
		return nil
	}
	return model.Float(1 / d2)
}
