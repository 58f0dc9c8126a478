package prep

import (
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

// ExtractFloorPlan decodes the floor-plan code (2LDK, 1R, ...). The leading
// digit is the room count; the letters flag living, dining, kitchen and
// storage space. A one-room (R) plan counts as a single room regardless of
// the other letters.
func ExtractFloorPlan(rows []*model.Listing) {
	for _, row := range rows {
		fp := row.FloorPlan
		if fp != "" && fp[0] >= '0' && fp[0] <= '9' {
			row.NumOfRestRooms = model.Int(int(fp[0] - '0'))
		}
		row.HavingLiving = flag(strings.Contains(fp, "L"))
		row.HavingDining = flag(strings.Contains(fp, "D"))
		row.HavingKitchen = flag(strings.Contains(fp, "K"))
		row.HavingStore = flag(strings.Contains(fp, "S"))
		row.HavingRoom = flag(strings.Contains(fp, "R"))

		if row.HavingRoom > 0 {
			row.NumOfRooms = model.Int(1)
		} else if row.NumOfRestRooms != nil {
			row.NumOfRooms = model.Int(*row.NumOfRestRooms +
				row.HavingLiving + row.HavingDining + row.HavingKitchen + row.HavingStore)
		}

		row.FloorPlan = ""
	}
}
