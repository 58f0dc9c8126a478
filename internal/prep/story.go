package prep

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

var (
	maxFloorRe   = regexp.MustCompile(`(\d+)階建`)
	ownFloorRe   = regexp.MustCompile(`(\d+)階`)
	underFloorRe = regexp.MustCompile(`地下(\d+)階`)
)

// ExtractStoryAndFloor parses "3階／10階建" style text into the unit's own
// floor, the building height and the basement depth, plus two ratios of the
// unit's position within the building.
func ExtractStoryAndFloor(rows []*model.Listing) {
	for _, row := range rows {
		s := row.StoryAndFloor

		if strings.Contains(s, "階建") {
			if m := maxFloorRe.FindStringSubmatch(s); m != nil {
				n, _ := strconv.Atoi(m[1])
				row.MaxFloor = model.Int(n)
			}
		}
		// The own floor only precedes the ／ separator; a bare "10階建"
		// has no own-floor part.
		if strings.Contains(s, "／") {
			if m := ownFloorRe.FindStringSubmatch(s); m != nil {
				n, _ := strconv.Atoi(m[1])
				row.OwnFloor = model.Int(n)
			}
		}
		if strings.Contains(s, "地下") {
			if m := underFloorRe.FindStringSubmatch(s); m != nil {
				n, _ := strconv.Atoi(m[1])
				row.HavingUnderFloor = n
			}
		}

		if row.MaxFloor != nil {
			if row.OwnFloor == nil {
				row.OwnRoomsRatio = model.Float(1)
			} else if *row.MaxFloor != 0 {
				row.OwnRoomsRatio = model.Float(1 / float64(*row.MaxFloor))
			}
			if row.OwnFloor != nil && *row.MaxFloor != 0 {
				row.FloorRatio = model.Float(float64(*row.OwnFloor) / float64(*row.MaxFloor))
			}
		}

		row.StoryAndFloor = ""
	}
}
