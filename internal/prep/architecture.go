package prep

import (
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

// materialRanks orders construction materials from most to least durable.
// The rank is the 1-based position; unknown materials rank last. RC must
// follow SRC in the list so that SRC does not match as plain RC.
var materialRanks = []string{"SRC", "RC", "HPC", "PC", "ALC", "鉄骨造", "軽量鉄骨", "木造", "ブロック"}

const unknownMaterialRank = 10

// ExtractArchitecture ranks the construction material.
func ExtractArchitecture(rows []*model.Listing) {
	for _, row := range rows {
		row.RankOfMaterial = unknownMaterialRank
		for i, m := range materialRanks {
			if strings.Contains(row.Architecture, m) {
				row.RankOfMaterial = i + 1
				break
			}
		}
		row.Architecture = ""
	}
}
