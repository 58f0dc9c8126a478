package refdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// toShiftJIS encodes a UTF-8 fixture the way the published tables ship.
func toShiftJIS(t *testing.T, s string) string {
	t.Helper()
	out, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), s)
	require.NoError(t, err)
	return out
}

func TestReadGeo(t *testing.T) {
	raw := "市区町村名,大字町丁目名,緯度,経度\n" +
		"中央区,晴海二丁目,35.654,139.784\n" +
		"港区,芝浦四丁目,35.642,139.748\n"

	table, err := ReadGeo(strings.NewReader(toShiftJIS(t, raw)))
	require.NoError(t, err)

	c, ok := table["中央区晴海2丁目"]
	require.True(t, ok, "kanji block number should be normalized in the key")
	assert.InDelta(t, 35.654, c.Lat, 1e-9)
	assert.InDelta(t, 139.784, c.Lon, 1e-9)

	_, ok = table["港区芝浦4丁目"]
	assert.True(t, ok)
}

func TestReadGeoDuplicateKeyFirstWins(t *testing.T) {
	raw := "市区町村名,大字町丁目名,緯度,経度\n" +
		"中央区,晴海二丁目,35.654,139.784\n" +
		"中央区,晴海二丁目,0.0,0.0\n"

	table, err := ReadGeo(strings.NewReader(toShiftJIS(t, raw)))
	require.NoError(t, err)
	assert.InDelta(t, 35.654, table["中央区晴海2丁目"].Lat, 1e-9)
}

func TestReadGeoMissingHeaderFatal(t *testing.T) {
	raw := "市区町村名,緯度,経度\n中央区,35.6,139.7\n"

	_, err := ReadGeo(strings.NewReader(toShiftJIS(t, raw)))
	assert.Error(t, err)
}

func TestReadLandPrice(t *testing.T) {
	// Two header rows: the first is decorative, the second is real.
	raw := "地価公示,,,\n" +
		"区市町村名,地番,当年価格（円）,備考\n" +
		"中央区,銀座4-2-15,\"40,000,000\",\n" +
		"港区,芝浦二丁目3-1,\"1,200,000\",\n"

	table, err := ReadLandPrice(strings.NewReader(toShiftJIS(t, raw)))
	require.NoError(t, err)

	assert.InDelta(t, 40000000, table["中央区銀座"], 1e-9)
	assert.InDelta(t, 1200000, table["港区芝浦2丁目"], 1e-9)
}

func TestReadLandPriceDuplicateKeysMean(t *testing.T) {
	raw := "x,,\n" +
		"区市町村名,地番,当年価格（円）\n" +
		"中央区,銀座4-2,\"100\"\n" +
		"中央区,銀座5-1,\"300\"\n"

	table, err := ReadLandPrice(strings.NewReader(toShiftJIS(t, raw)))
	require.NoError(t, err)
	assert.InDelta(t, 200, table["中央区銀座"], 1e-9)
}

func TestReadLandPriceUnparsablePriceSkipped(t *testing.T) {
	raw := "x,,\n" +
		"区市町村名,地番,当年価格（円）\n" +
		"中央区,銀座4-2,-\n" +
		"港区,芝浦1-1,\"500\"\n"

	table, err := ReadLandPrice(strings.NewReader(toShiftJIS(t, raw)))
	require.NoError(t, err)
	_, ok := table["中央区銀座"]
	assert.False(t, ok)
	assert.InDelta(t, 500, table["港区芝浦"], 1e-9)
}

func TestReadLandPriceMalformedHeaderFatal(t *testing.T) {
	raw := "x,,\n区市町村,番地,価格\n中央区,1,100\n"

	_, err := ReadLandPrice(strings.NewReader(toShiftJIS(t, raw)))
	assert.Error(t, err)
}

func TestDistrictPart(t *testing.T) {
	assert.Equal(t, "中央区銀座", districtPart("中央区銀座4-2-15"))
	assert.Equal(t, "港区芝浦", districtPart("港区芝浦"))
	assert.Equal(t, "", districtPart("123"))
}
