package prep

import (
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

// ExtractBroadcasting flags the connectivity services named in the
// broadcasting column and counts the listed services.
func ExtractBroadcasting(rows []*model.Listing) {
	for _, row := range rows {
		row.HasInternet = flag(strings.Contains(row.Broadcasting, "インターネット対応"))
		row.HasFiber = flag(strings.Contains(row.Broadcasting, "光ファイバー"))
		row.HasAntenna = flag(strings.Contains(row.Broadcasting, "アンテナ"))

		s := strings.ReplaceAll(row.Broadcasting, "\t", " ")
		s = strings.ReplaceAll(s, "／", "")
		row.NumOfBCFunctions = len(strings.Fields(s))

		row.Broadcasting = ""
	}
}
