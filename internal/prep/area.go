package prep

import (
	"regexp"
	"strconv"

	"github.com/arialab/rentprep/internal/model"
)

var areaRe = regexp.MustCompile(`(\d+(?:\.\d+)?)m2`)

// ExtractArea parses the floor area ("25.5m2") into square meters.
func ExtractArea(rows []*model.Listing) {
	for _, row := range rows {
		if m := areaRe.FindStringSubmatch(row.AreaText); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				row.Area = model.Float(v)
			}
		}
		row.AreaText = ""
	}
}
