package prep

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/arialab/rentprep/internal/jptext"
	"github.com/arialab/rentprep/internal/model"
	"github.com/arialab/rentprep/internal/refdata"
)

var (
	parenthesizedRe = regexp.MustCompile(`[（(].*[）)]`)
	addressSpaceRe  = regexp.MustCompile(`[\s、]`)
	undecidedRe     = regexp.MustCompile(`(以下|詳細)*未定`)
	lotNumberRe     = regexp.MustCompile(`(\d)番地?`)
	dashRunRe       = regexp.MustCompile(`-{2,}`)
	houseNumberRe   = regexp.MustCompile(`(\d)号`)
	districtRe      = regexp.MustCompile(`東京都(.+?)区`)
	detailedRe      = regexp.MustCompile(`東京都(.+?)\d+丁目`)
)

// The five central wards.
var toshinWards = map[string]bool{
	"千代田": true,
	"中央":  true,
	"港":   true,
	"渋谷":  true,
	"新宿":  true,
}

// ExtractLocation normalizes the address text, derives the ward columns,
// joins the geocode and land-price tables on the normalized address, and
// backfills missing land prices from neighborhood then ward means.
//
// Location itself is kept on the record: the target reconciler joins on it,
// so the orchestrator clears it at the end of the run.
func ExtractLocation(rows []*model.Listing, geo refdata.GeoTable, land refdata.LandPriceTable) {
	geoHits, landHits := 0, 0

	for _, row := range rows {
		loc := cleanAddress(row.Location)

		if m := districtRe.FindStringSubmatch(loc); m != nil {
			row.District = m[1]
		}
		if strings.Contains(loc, "丁目") {
			if m := detailedRe.FindStringSubmatch(loc); m != nil {
				row.DetailedDistrict = m[1]
			}
		} else {
			row.DetailedDistrict = strings.TrimPrefix(loc, "東京都")
		}
		if toshinWards[row.District] {
			row.IsToshin = 1
		}

		loc = strings.TrimPrefix(loc, "東京都")
		row.Location = loc

		if c, ok := geo[loc]; ok {
			row.Latitude = model.Float(c.Lat)
			row.Longitude = model.Float(c.Lon)
			geoHits++
		}
		if p, ok := land[loc]; ok {
			row.LandPrice = model.Float(p)
			landHits++
		}
	}

	fillLandPrice(rows, func(r *model.Listing) string { return r.DetailedDistrict })
	fillLandPrice(rows, func(r *model.Listing) string { return r.District })

	zap.L().Info("location extracted",
		zap.Int("rows", len(rows)),
		zap.Int("geo_hits", geoHits),
		zap.Int("land_price_hits", landHits),
	)
}

// cleanAddress normalizes one raw address. The first-match-wins cascade at
// the top mirrors how the source data was entered: a parenthesized building
// name, a stray separator, or a letter I typo never co-occur.
func cleanAddress(s string) string {
	switch {
	case parenthesizedRe.MatchString(s):
		s = parenthesizedRe.ReplaceAllString(s, "")
	case addressSpaceRe.MatchString(s):
		s = addressSpaceRe.ReplaceAllString(s, "")
	case strings.Contains(s, "I"):
		s = strings.Replace(s, "I", "1", 1)
	}

	s = jptext.FoldDigits(s)
	s = undecidedRe.ReplaceAllString(s, "")
	s = jptext.UnifyDashes(s)
	s = lotNumberRe.ReplaceAllString(s, "$1-")
	s = dashRunRe.ReplaceAllString(s, "-")
	s = houseNumberRe.ReplaceAllString(s, "$1")
	s = jptext.ConvertKanjiNumerals(s)
	return removeBuildingNumbers(s)
}

// removeBuildingNumbers cuts the address at the first digit run that is not
// a block number. A run directly followed by 丁目 is part of the address
// proper and survives; anything from the next run on is building detail.
func removeBuildingNumbers(s string) string {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] < '0' || runes[i] > '9' {
			continue
		}
		j := i
		for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			j++
		}
		if strings.HasPrefix(string(runes[j:]), "丁目") {
			i = j
			continue
		}
		return strings.TrimSpace(string(runes[:i]))
	}
	return strings.TrimSpace(s)
}

// fillLandPrice fills missing land prices with the mean over rows sharing
// the same key. Rows whose key group has no priced member stay nil.
func fillLandPrice(rows []*model.Listing, key func(*model.Listing) string) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range rows {
		if r.LandPrice != nil {
			k := key(r)
			sums[k] += *r.LandPrice
			counts[k]++
		}
	}
	for _, r := range rows {
		if r.LandPrice != nil {
			continue
		}
		if n := counts[key(r)]; n > 0 {
			r.LandPrice = model.Float(sums[key(r)] / float64(n))
		}
	}
}
