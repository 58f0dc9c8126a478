package prep

import (
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

var (
	bathFunctionWords   = []string{"専用バス", "シャワー", "追焚機能", "洗面台独立", "脱衣所", "浴室乾燥機"}
	toiletFunctionWords = []string{"専用トイレ", "温水洗浄便座"}
)

// ExtractBathToilet counts bath and toilet amenities and flags whether the
// bath and toilet are separate rooms.
func ExtractBathToilet(rows []*model.Listing) {
	for _, row := range rows {
		s := strings.ReplaceAll(row.BathAndToilet, "\t", " ")
		s = strings.ReplaceAll(s, "／", "")

		tokens := strings.Fields(s)
		row.ToiletFunctions = countMembers(tokens, toiletFunctionWords)
		row.BathFunctions = countMembers(tokens, bathFunctionWords)
		row.IsSeparate = flag(strings.Contains(s, "別"))

		row.BathAndToilet = ""
	}
}

// countMembers counts tokens that appear verbatim in the vocabulary.
func countMembers(tokens, vocabulary []string) int {
	n := 0
	for _, tok := range tokens {
		for _, v := range vocabulary {
			if tok == v {
				n++
				break
			}
		}
	}
	return n
}
