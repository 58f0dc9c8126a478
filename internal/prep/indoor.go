package prep

import (
	"strings"

	"github.com/arialab/rentprep/internal/model"
)

// indoorFeatures maps each equipment keyword to its flag column. Broader
// keywords deliberately shadow narrower ones (エアコン also fires for
// エアコン付), matching how the flags were defined.
var indoorFeatures = []struct {
	keyword string
	field   func(*model.Listing) *int
}{
	{"エアコン", func(l *model.Listing) *int { return &l.HasAirConditioner }},
	{"エレベーター", func(l *model.Listing) *int { return &l.HasElevator }},
	{"敷地内ごみ", func(l *model.Listing) *int { return &l.HasGarbageArea }},
	{"室内洗濯機", func(l *model.Listing) *int { return &l.HasLaundrySpace }},
	{"バルコニー", func(l *model.Listing) *int { return &l.HasBalcony }},
	{"都市ガス", func(l *model.Listing) *int { return &l.HasCityGus }},
	{"防音室", func(l *model.Listing) *int { return &l.HasSoundproofRoom }},
	{"井戸", func(l *model.Listing) *int { return &l.HasWell }},
	{"ルーフバルコニー", func(l *model.Listing) *int { return &l.HasRoofBalcony }},
	{"ガス暖房", func(l *model.Listing) *int { return &l.HasGasHeating }},
	{"室内洗濯機置場", func(l *model.Listing) *int { return &l.HasIndoorLaundry }},
	{"汲み取り", func(l *model.Listing) *int { return &l.HasSepticTank }},
	{"シューズボックス", func(l *model.Listing) *int { return &l.HasShoeBox }},
	{"室外洗濯機置場", func(l *model.Listing) *int { return &l.HasOutdoorLaundry }},
	{"エアコン付", func(l *model.Listing) *int { return &l.HasAirConditionerIncl }},
	{"バリアフリー", func(l *model.Listing) *int { return &l.HasBarrierFree }},
	{"プロパンガス", func(l *model.Listing) *int { return &l.HasPropaneGas }},
	{"浄化槽", func(l *model.Listing) *int { return &l.HasSepticSystem }},
	{"床暖房", func(l *model.Listing) *int { return &l.HasFloorHeating }},
}

// ExtractIndoorFacilities sets one flag per recognized equipment keyword
// and totals them.
func ExtractIndoorFacilities(rows []*model.Listing) {
	for _, row := range rows {
		total := 0
		for _, f := range indoorFeatures {
			if strings.Contains(row.IndoorFacilities, f.keyword) {
				*f.field(row) = 1
				total++
			}
		}
		row.NumOfEquipments = total
		row.IndoorFacilities = ""
	}
}
