package prep

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

var meterRe = regexp.MustCompile(`(\d+)m`)

// ExtractEnvironment pulls the distance to the closest supermarket and
// convenience store from the surroundings text, and counts the listed
// facilities by their 【category】 markers.
func ExtractEnvironment(rows []*model.Listing) {
	for _, row := range rows {
		row.SuperDistance = minDistance(row.Environment, "スーパー")
		row.CSDistance = minDistance(row.Environment, "コンビニ")
		row.CountBuildings = strings.Count(row.Environment, "【")
		row.Environment = ""
	}
}

func minDistance(text, keyword string) *int {
	var min *int
	for _, entry := range strings.Split(text, "\t") {
		if !strings.Contains(entry, keyword) {
			continue
		}
		m := meterRe.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		d, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if min == nil || d < *min {
			min = model.Int(d)
		}
	}
	return min
}
