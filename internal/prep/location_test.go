package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arialab/rentprep/internal/model"
	"github.com/arialab/rentprep/internal/refdata"
)

func TestCleanAddress(t *testing.T) {
	cases := []struct{ in, want string }{
		{"東京都中央区晴海２丁目２－４２", "東京都中央区晴海2丁目"},
		{"東京都世田谷区太子堂一丁目", "東京都世田谷区太子堂1丁目"},
		{"東京都足立区梅田1丁目8番16号", "東京都足立区梅田1丁目"},
		{"東京都港区芝浦（ビル名）4丁目", "東京都港区芝浦4丁目"},
		{"東京都新宿区以下未定", "東京都新宿区"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, cleanAddress(c.in), c.in)
	}
}

func TestRemoveBuildingNumbers(t *testing.T) {
	assert.Equal(t, "東京都中央区晴海2丁目", removeBuildingNumbers("東京都中央区晴海2丁目2-42"))
	assert.Equal(t, "東京都品川区東品川4丁目", removeBuildingNumbers("東京都品川区東品川4丁目"))
	// A multi-digit block number is one unit; 10丁目 must not decay to 1.
	assert.Equal(t, "東京都北区西ケ原10丁目", removeBuildingNumbers("東京都北区西ケ原10丁目"))
}

func TestExtractLocation(t *testing.T) {
	geo := refdata.GeoTable{"中央区晴海2丁目": {Lat: 35.654, Lon: 139.784}}
	land := refdata.LandPriceTable{}
	rows := []*model.Listing{{ID: 1, Location: "東京都中央区晴海２丁目２－４２"}}

	ExtractLocation(rows, geo, land)

	row := rows[0]
	assert.Equal(t, "中央区晴海2丁目", row.Location)
	assert.Equal(t, "中央", row.District)
	assert.Equal(t, "中央区晴海", row.DetailedDistrict)
	assert.Equal(t, 1, row.IsToshin)
	require.NotNil(t, row.Latitude)
	assert.InDelta(t, 35.654, *row.Latitude, 1e-9)
	require.NotNil(t, row.Longitude)
	assert.InDelta(t, 139.784, *row.Longitude, 1e-9)
}

func TestExtractLocationNonToshin(t *testing.T) {
	rows := []*model.Listing{{ID: 1, Location: "東京都大田区本羽田1丁目"}}

	ExtractLocation(rows, refdata.GeoTable{}, refdata.LandPriceTable{})

	assert.Equal(t, "大田", rows[0].District)
	assert.Equal(t, 0, rows[0].IsToshin)
	assert.Nil(t, rows[0].Latitude)
}

func TestExtractLocationLandPriceBackfill(t *testing.T) {
	// The land table keys have no block numbers, so only the address
	// without 丁目 joins directly; its neighbors fill from the group mean.
	land := refdata.LandPriceTable{"港区芝浦": 1000}
	rows := []*model.Listing{
		{ID: 1, Location: "東京都港区芝浦"},
		{ID: 2, Location: "東京都港区芝浦４丁目"},
		{ID: 3, Location: "東京都港区海岸１丁目"},
	}

	ExtractLocation(rows, refdata.GeoTable{}, land)

	require.NotNil(t, rows[0].LandPrice)
	assert.InDelta(t, 1000, *rows[0].LandPrice, 1e-9)

	// Same neighborhood, filled from the neighborhood mean.
	require.NotNil(t, rows[1].LandPrice)
	assert.InDelta(t, 1000, *rows[1].LandPrice, 1e-9)

	// Different neighborhood, filled from the ward mean.
	require.NotNil(t, rows[2].LandPrice)
	assert.InDelta(t, 1000, *rows[2].LandPrice, 1e-9)
}
