package prep

import (
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

// ExtractParking ranks car, bicycle and motorbike parking availability:
// 2 for vacancies on site, 1 for nearby, 0 otherwise.
func ExtractParking(rows []*model.Listing) {
	for _, row := range rows {
		s := strings.ReplaceAll(row.ParkingText, "\t", " ")
		row.HasCarParking = parkingRank(s, "駐車場")
		row.HasBicycleParking = parkingRank(s, "駐輪場")
		row.HasBikeParking = parkingRank(s, "バイク置き場")
		row.ParkingText = ""
	}
}

func parkingRank(text, kind string) int {
	switch {
	case strings.Contains(text, kind+" 空有"):
		return 2
	case strings.Contains(text, kind+" 近隣"):
		return 1
	}
	return 0
}
