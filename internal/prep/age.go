package prep

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

var (
	ageYearsRe  = regexp.MustCompile(`(\d+)\s*年`)
	ageMonthsRe = regexp.MustCompile(`(\d+)\s*ヶ月`)
)

const monthsPerYear = 12

// ExtractAge converts the building age text to total months. 新築 (newly
// built) is zero; missing year or month parts default to zero. The age band
// rewards buildings under ten then twenty years.
func ExtractAge(rows []*model.Listing) {
	for _, row := range rows {
		total := 0
		if !strings.Contains(row.AgeOfBuilding, "新築") {
			if m := ageYearsRe.FindStringSubmatch(row.AgeOfBuilding); m != nil {
				y, _ := strconv.Atoi(m[1])
				total += y * monthsPerYear
			}
			if m := ageMonthsRe.FindStringSubmatch(row.AgeOfBuilding); m != nil {
				mo, _ := strconv.Atoi(m[1])
				total += mo
			}
		}

		row.TotalMonths = total
		switch {
		case total < 10*monthsPerYear:
			row.RecommendedAoB = 2
		case total < 20*monthsPerYear:
			row.RecommendedAoB = 1
		default:
			row.RecommendedAoB = 0
		}

		row.AgeOfBuilding = ""
	}
}
