package prep

import (
	"strings"

	"go.uber.org/zap"

	"github.com/arialab/rentprep/internal/model"
)

// Raw cells the extractor corrections target.
const (
	colLocation = "Location"
	colArea     = "Area"
	colAge      = "Age"
	colTarget   = "Target"
)

// correction pins a known-bad source cell to its fixed value.
type correction struct {
	id     int
	column string
	value  string
}

// corrections is the curated list of data-entry mistakes in the published
// tables, identified by row id.
var corrections = []correction{
	{3335, colLocation, "東京都中央区晴海２丁目２－４２"},
	{5776, colTarget, "123500"},
	{7089, colLocation, "東京都大田区池上８丁目6-2"},
	{7492, colArea, "58.3m2"},
	{9483, colLocation, "東京都世田谷区太子堂1丁目"},
	{19366, colLocation, "東京都大田区池上８丁目6-2"},
	{20232, colAge, "20年5ヶ月"},
	{20428, colAge, "19年7ヶ月"},
	{20888, colLocation, "東京都大田区本羽田1丁目"},
	{20927, colArea, "43.1m2"},
	{21286, colLocation, "東京都北区西ケ原３丁目"},
	{22250, colLocation, "東京都中央区晴海２丁目２－４２"},
	{22884, colLocation, "東京都新宿区下落合２丁目1-17"},
	{27199, colLocation, "東京都中央区晴海２丁目２－４２"},
	{28141, colLocation, "東京都北区西ケ原１丁目"},
	{34519, colLocation, "東京都足立区梅田１丁目8-16"},
	{34625, colLocation, "東京都渋谷区千駄ヶ谷３丁目41-12"},
	{36275, colLocation, "東京都大田区本羽田1丁目"},
	{40439, colLocation, "東京都品川区東品川4丁目"},
	{41913, colLocation, "東京都板橋区志村１丁目８－１"},
	{45863, colLocation, "東京都大田区東糀谷３丁目2-2"},
	{49887, colLocation, "東京都大田区大森北1丁目"},
	{56202, colLocation, "東京都大田区新蒲田３丁目9-20"},
	{57445, colLocation, "東京都目黒区八雲2丁目"},
	{58136, colLocation, "東京都文京区本駒込６丁目１－２２"},
	{58987, colLocation, "東京都北区西ケ原４丁目"},
}

// ApplyCorrections fixes known data-entry mistakes before any extractor
// runs: the id-keyed corrections above, then a handful of pattern fixes
// that recur across rows, then the one rent figure that was re-audited.
func ApplyCorrections(rows []*model.Listing) {
	byID := make(map[int]*model.Listing, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	applied := 0
	for _, c := range corrections {
		row, ok := byID[c.id]
		if !ok {
			continue
		}
		switch c.column {
		case colLocation:
			row.Location = c.value
		case colArea:
			row.AreaText = c.value
		case colAge:
			row.AgeOfBuilding = c.value
		case colTarget:
			row.Target = model.Float(123500)
		}
		applied++
	}

	for _, row := range rows {
		if strings.Contains(row.FloorPlan, "11R") {
			row.FloorPlan = "1R"
		}
		if strings.Contains(row.AgeOfBuilding, "520年5ヶ月") {
			row.AgeOfBuilding = "52年5ヶ月"
		} else if strings.Contains(row.AgeOfBuilding, "1019年7ヶ月") {
			row.AgeOfBuilding = "19年7ヶ月"
		}
		switch row.AreaText {
		case "430.1m2":
			row.AreaText = "43.01m2"
		case "1m2":
			row.AreaText = "10m2"
		case "5.83m2":
			row.AreaText = "58.3m2"
		}
	}

	// Re-audited figure, overrides the tabled correction.
	if row, ok := byID[5776]; ok {
		row.Target = model.Float(120350)
	}

	zap.L().Debug("corrections applied", zap.Int("count", applied))
}
