package prep

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

var stoveBurnerRe = regexp.MustCompile(`コンロ(\d+)口`)

// ExtractKitchen parses the kitchen column: burner count, a kitchen-type
// rank (L-shaped over counter over system), the remaining feature count,
// and stove-type flags.
func ExtractKitchen(rows []*model.Listing) {
	for _, row := range rows {
		s := strings.ReplaceAll(row.Kitchen, "／", " ")

		if m := stoveBurnerRe.FindStringSubmatch(s); m != nil {
			n, _ := strconv.Atoi(m[1])
			row.CockNumber = model.Int(n)
			s = strings.TrimSpace(stoveBurnerRe.ReplaceAllString(s, ""))
		}

		switch {
		case strings.Contains(s, "L字"):
			row.KitchenRanking = 3
		case strings.Contains(s, "カウンター"):
			row.KitchenRanking = 2
		case strings.Contains(s, "システム"):
			row.KitchenRanking = 1
		}

		row.KitchenFeatureNumber = len(strings.Fields(s))
		row.HasGasStove = flag(strings.Contains(s, "ガスコンロ"))
		row.HasIHStove = flag(strings.Contains(s, "IH"))
		row.HasSystemKitchen = flag(strings.Contains(s, "システムキッチン"))

		row.Kitchen = ""
	}
}
