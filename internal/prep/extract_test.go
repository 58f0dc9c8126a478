package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arialab/rentprep/internal/model"
)

func TestExtractFloorPlan(t *testing.T) {
	rows := []*model.Listing{{ID: 1, FloorPlan: "2LDK"}}

	ExtractFloorPlan(rows)

	row := rows[0]
	require.NotNil(t, row.NumOfRestRooms)
	assert.Equal(t, 2, *row.NumOfRestRooms)
	assert.Equal(t, 1, row.HavingLiving)
	assert.Equal(t, 1, row.HavingDining)
	assert.Equal(t, 1, row.HavingKitchen)
	assert.Equal(t, 0, row.HavingStore)
	assert.Equal(t, 0, row.HavingRoom)
	require.NotNil(t, row.NumOfRooms)
	assert.Equal(t, 5, *row.NumOfRooms)
}

func TestExtractFloorPlanOneRoom(t *testing.T) {
	rows := []*model.Listing{{ID: 1, FloorPlan: "1R"}}

	ExtractFloorPlan(rows)

	assert.Equal(t, 1, rows[0].HavingRoom)
	require.NotNil(t, rows[0].NumOfRooms)
	assert.Equal(t, 1, *rows[0].NumOfRooms)
}

func TestExtractAge(t *testing.T) {
	cases := []struct {
		age        string
		months     int
		recommends int
	}{
		{"3年2ヶ月", 38, 2},
		{"新築", 0, 2},
		{"15年", 180, 1},
		{"25年", 300, 0},
		{"8ヶ月", 8, 2},
	}
	for _, c := range cases {
		rows := []*model.Listing{{ID: 1, AgeOfBuilding: c.age}}
		ExtractAge(rows)
		assert.Equal(t, c.months, rows[0].TotalMonths, c.age)
		assert.Equal(t, c.recommends, rows[0].RecommendedAoB, c.age)
	}
}

func TestExtractArea(t *testing.T) {
	rows := []*model.Listing{
		{ID: 1, AreaText: "25.5m2"},
		{ID: 2, AreaText: "58m2"},
		{ID: 3, AreaText: "広い"},
	}

	ExtractArea(rows)

	require.NotNil(t, rows[0].Area)
	assert.InDelta(t, 25.5, *rows[0].Area, 1e-9)
	require.NotNil(t, rows[1].Area)
	assert.InDelta(t, 58, *rows[1].Area, 1e-9)
	assert.Nil(t, rows[2].Area)
}

func TestExtractStoryAndFloor(t *testing.T) {
	rows := []*model.Listing{{ID: 1, StoryAndFloor: "3階／10階建"}}

	ExtractStoryAndFloor(rows)

	row := rows[0]
	require.NotNil(t, row.MaxFloor)
	assert.Equal(t, 10, *row.MaxFloor)
	require.NotNil(t, row.OwnFloor)
	assert.Equal(t, 3, *row.OwnFloor)
	require.NotNil(t, row.FloorRatio)
	assert.InDelta(t, 0.3, *row.FloorRatio, 1e-9)
	require.NotNil(t, row.OwnRoomsRatio)
	assert.InDelta(t, 0.1, *row.OwnRoomsRatio, 1e-9)
	assert.Equal(t, 0, row.HavingUnderFloor)
}

func TestExtractStoryAndFloorBuildingOnly(t *testing.T) {
	rows := []*model.Listing{{ID: 1, StoryAndFloor: "10階建"}}

	ExtractStoryAndFloor(rows)

	assert.Nil(t, rows[0].OwnFloor)
	require.NotNil(t, rows[0].OwnRoomsRatio)
	assert.InDelta(t, 1, *rows[0].OwnRoomsRatio, 1e-9)
	assert.Nil(t, rows[0].FloorRatio)
}

func TestExtractStoryAndFloorBasement(t *testing.T) {
	rows := []*model.Listing{{ID: 1, StoryAndFloor: "地下1階／5階建"}}

	ExtractStoryAndFloor(rows)

	assert.Equal(t, 1, rows[0].HavingUnderFloor)
	require.NotNil(t, rows[0].MaxFloor)
	assert.Equal(t, 5, *rows[0].MaxFloor)
}
