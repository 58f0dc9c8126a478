package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arialab/rentprep/internal/model"
)

func TestExtractAccess(t *testing.T) {
	rows := []*model.Listing{{
		ID:     1,
		Access: "都営大江戸線\t勝どき駅 徒歩5分\t\t山手線\t浜松町駅 徒歩１２分",
	}}

	ExtractAccess(rows)

	row := rows[0]
	require.NotNil(t, row.MinTimeToAlive)
	assert.Equal(t, 5, *row.MinTimeToAlive)
	assert.Equal(t, "大江戸線", row.NearestLineName, "operator prefix is stripped")
	assert.Equal(t, 2, row.NumOfLines)
	assert.Equal(t, 2, row.CloseToStation)
	assert.Empty(t, row.Access)
}

func TestExtractAccessProximityBands(t *testing.T) {
	cases := []struct {
		access string
		want   int
	}{
		{"山手線\t東京駅 徒歩5分", 2},
		{"山手線\t東京駅 徒歩10分", 1},
		{"山手線\t東京駅 徒歩12分", 0},
		{"山手線\t東京駅", 0},
	}
	for _, c := range cases {
		rows := []*model.Listing{{ID: 1, Access: c.access}}
		ExtractAccess(rows)
		assert.Equal(t, c.want, rows[0].CloseToStation, c.access)
	}
}

func TestExtractAccessTimelessEntriesExcluded(t *testing.T) {
	rows := []*model.Listing{{ID: 1, Access: "山手線\t東京駅\t\n"}}

	ExtractAccess(rows)

	assert.Nil(t, rows[0].MinTimeToAlive)
	assert.Empty(t, rows[0].NearestLineName)
	assert.Equal(t, 1, rows[0].NumOfLines)
}

func TestCanonicalLine(t *testing.T) {
	cases := []struct{ in, want string }{
		{"三田線", "都営三田線"},
		{"京王井の頭線", "井ノ頭線"},
		{"中央線", "中央線（快速）"},
		{"中央本線直通何某線", "中央本線"},
		{"山手線", "山手線"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, canonicalLine(c.in), c.in)
	}
}

func TestNormalizeNearestLine(t *testing.T) {
	cases := []struct{ in, want string }{
		{"東京メトロ丸ノ内線", "丸ノ内線"},
		{"JR総武本線", "総武線"},
		{"丸の内線", "丸ノ内線"},
		{"京王井の頭線", "京王井ノ頭線"},
		{"東急東横線", "東横線"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizeNearestLine(c.in), c.in)
	}
}
