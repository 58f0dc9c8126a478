package prep

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/arialab/rentprep/internal/jptext"
	"github.com/arialab/rentprep/internal/model"
)

var (
	walkTimeRe = regexp.MustCompile(`徒歩(\d+)分`)
	lineNameRe = regexp.MustCompile(`(\S*線)`)
)

// lineAlias maps a source spelling of a rail line to its canonical name.
// Substring rules catch lines buried in longer station strings; the rest
// must match the extracted name exactly.
type lineAlias struct {
	substring bool
	from, to  string
}

var lineAliases = []lineAlias{
	{true, "湘南新宿ライン", "湘南新宿ライン"},
	{true, "中央本線", "中央本線"},
	{false, "東武伊勢崎大師線", "東武スカイツリーライン"},
	{false, "東武伊勢崎線", "東武伊勢崎線(押上－曳舟)"},
	{false, "京王井の頭線", "井ノ頭線"},
	{false, "京成電鉄本線", "京成本線"},
	{false, "三田線", "都営三田線"},
	{false, "京王小田急線", "小田急小田原線"},
	{false, "小田急電鉄小田原線", "小田急小田原線"},
	{false, "中央総武線", "総武線・中央線（各停）"},
	{false, "中央総武緩行線", "総武線・中央線（各停）"},
	{false, "地下鉄浅草線", "都営浅草線"},
	{false, "浅草線", "都営浅草線"},
	{false, "西武池袋豊島線", "西武池袋線"},
	{false, "総武線", "総武線・中央線（各停）"},
	{false, "東京臨海高速鉄道", "りんかい線"},
	{false, "東京モノレール", "東京モノレール羽田線"},
	{false, "日暮里舎人ライナー", "日暮里・舎人ライナー"},
	{false, "大井町線", "東急大井町線"},
	{false, "千代田常磐緩行線", "常磐線"},
	{false, "中央線", "中央線（快速）"},
	{false, "丸ノ内線", "丸ノ内線(池袋－荻窪)"},
	{false, "京成成田空港線", "京成本線"},
	{false, "京浜東北根岸線", "京浜東北線"},
}

// Operator prefixes stripped from the nearest line name.
var lineOperators = []string{"東京メトロ", "JR", "ＪＲ", "東京都", "都電", "都営", "東急"}

// ExtractAccess parses the station access text. Each entry names a line,
// a station and a walking time; the extractor keeps the closest station's
// time and line, the count of distinct lines, and a proximity band.
func ExtractAccess(rows []*model.Listing) {
	for _, row := range rows {
		text := jptext.FoldDigits(row.Access)

		var minTime *int
		nearest := ""
		lines := make(map[string]bool)

		for _, entry := range strings.Split(text, "\t\t") {
			var name string
			if m := lineNameRe.FindStringSubmatch(entry); m != nil {
				name = canonicalLine(m[1])
				lines[name] = true
			}

			// Entries without a walking time cannot be the nearest.
			m := walkTimeRe.FindStringSubmatch(entry)
			if m == nil {
				continue
			}
			t, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if minTime == nil || t < *minTime {
				minTime = model.Int(t)
				nearest = name
			}
		}

		row.MinTimeToAlive = minTime
		row.NearestLineName = normalizeNearestLine(nearest)
		row.NumOfLines = len(lines)
		switch {
		case minTime == nil:
			row.CloseToStation = 0
		case *minTime <= 5:
			row.CloseToStation = 2
		case *minTime <= 10:
			row.CloseToStation = 1
		}

		row.Access = ""
	}
}

func canonicalLine(name string) string {
	for _, a := range lineAliases {
		if a.substring {
			if strings.Contains(name, a.from) {
				return a.to
			}
		} else if name == a.from {
			return a.to
		}
	}
	return name
}

// normalizeNearestLine strips operator prefixes, then fixes the remaining
// spelling variants. The variant chain is first-match-wins.
func normalizeNearestLine(name string) string {
	for _, op := range lineOperators {
		name = strings.Replace(name, op, "", 1)
	}
	switch {
	case strings.Contains(name, "丸の内"):
		name = strings.Replace(name, "丸の内", "丸ノ内", 1)
	case strings.Contains(name, "総武本線"):
		name = strings.Replace(name, "総武本線", "総武線", 1)
	case strings.Contains(name, "京王井ノ頭"):
		name = strings.Replace(name, "京王井ノ頭", "井ノ頭", 1)
	case strings.Contains(name, "井の頭"):
		name = strings.Replace(name, "井の頭", "井ノ頭", 1)
	}
	return name
}
