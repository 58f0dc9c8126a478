// Package model defines the listing record that flows through the
// preprocessing pipeline.
package model

// RawListing mirrors the source CSV schema with its original Japanese
// headers. The test table simply lacks the 賃料 column, so Target stays nil
// for test rows.
type RawListing struct {
	ID               int      `csv:"id"`
	Target           *float64 `csv:"賃料"`
	Location         string   `csv:"所在地"`
	Access           string   `csv:"アクセス"`
	FloorPlan        string   `csv:"間取り"`
	AgeOfBuilding    string   `csv:"築年数"`
	Direction        string   `csv:"方角"`
	Area             string   `csv:"面積"`
	StoryAndFloor    string   `csv:"所在階"`
	BathAndToilet    string   `csv:"バス・トイレ"`
	Kitchen          string   `csv:"キッチン"`
	Broadcasting     string   `csv:"放送・通信"`
	IndoorFacilities string   `csv:"室内設備"`
	Parking          string   `csv:"駐車場"`
	Environment      string   `csv:"周辺環境"`
	Architecture     string   `csv:"建物構造"`
	ContractPeriod   string   `csv:"契約期間"`
}

// Listing is one rental listing row. Raw text fields are consumed (and
// cleared) by their extractor; derived columns carry the output schema.
// Nullable features are pointers, defaulted features plain values.
type Listing struct {
	ID      int      `csv:"id"`
	IsTrain bool     `csv:"-"`
	Target  *float64 `csv:"Target"`

	// Raw text columns. Present at ingestion, cleared once extracted.
	// Location outlives its extractor: the Target Reconciler joins on the
	// normalized form, so the orchestrator clears it last.
	Location         string `csv:"-"`
	Access           string `csv:"-"`
	FloorPlan        string `csv:"-"`
	AgeOfBuilding    string `csv:"-"`
	AreaText         string `csv:"-"`
	StoryAndFloor    string `csv:"-"`
	BathAndToilet    string `csv:"-"`
	Kitchen          string `csv:"-"`
	Broadcasting     string `csv:"-"`
	IndoorFacilities string `csv:"-"`
	ParkingText      string `csv:"-"`
	Environment      string `csv:"-"`
	Architecture     string `csv:"-"`
	ContractPeriod   string `csv:"-"`

	// Passed through unmodified; categorical.
	Direction string `csv:"Direction"`

	// Location-derived.
	District         string   `csv:"district"`
	DetailedDistrict string   `csv:"-"` // intermediate join key, not emitted
	IsToshin         int      `csv:"is_toshin"`
	Latitude         *float64 `csv:"latitude"`
	Longitude        *float64 `csv:"longitude"`
	LandPrice        *float64 `csv:"Land_Price"`

	// Access-derived.
	MinTimeToAlive  *int   `csv:"min_time_to_alive"`
	NearestLineName string `csv:"nearest_line_name"`
	NumOfLines      int    `csv:"num_of_lines"`
	CloseToStation  int    `csv:"close_to_station_evaluation"`

	// Floor-plan-derived.
	NumOfRestRooms *int `csv:"Num_of_rest_Rooms"`
	HavingLiving   int  `csv:"Having_Living"`
	HavingDining   int  `csv:"Having_Dining"`
	HavingKitchen  int  `csv:"Having_Kitchen"`
	HavingStore    int  `csv:"Having_Store"`
	HavingRoom     int  `csv:"Having_Room"`
	NumOfRooms     *int `csv:"Num_of_Rooms"`

	// Age-derived.
	TotalMonths    int `csv:"total_months"`
	RecommendedAoB int `csv:"recommended_AoB"`

	// Area-derived.
	Area *float64 `csv:"Area"`

	// Story/floor-derived.
	MaxFloor         *int     `csv:"max_floor"`
	OwnFloor         *int     `csv:"own_floor"`
	HavingUnderFloor int      `csv:"Having_under_floor"`
	OwnRoomsRatio    *float64 `csv:"own_rooms_ratio"`
	FloorRatio       *float64 `csv:"floor_ratio"`

	// Bath/toilet-derived.
	ToiletFunctions int `csv:"toilet_functions"`
	BathFunctions   int `csv:"bath_functions"`
	IsSeparate      int `csv:"is_separate"`

	// Broadcasting/communication-derived.
	HasInternet      int `csv:"has_internet"`
	HasFiber         int `csv:"has_fiber"`
	HasAntenna       int `csv:"has_antenna"`
	NumOfBCFunctions int `csv:"num_of_BC_functions"`

	// Kitchen-derived.
	CockNumber           *int `csv:"cock_number"`
	KitchenRanking       int  `csv:"Kitchen_Ranking"`
	KitchenFeatureNumber int  `csv:"Kitchen_feature_number"`
	HasGasStove          int  `csv:"has_gas_stove"`
	HasIHStove           int  `csv:"has_IH_stove"`
	HasSystemKitchen     int  `csv:"has_system_kitchen"`

	// Indoor-facility flags.
	HasAirConditioner     int `csv:"has_air_conditioner"`
	HasElevator           int `csv:"has_elevator"`
	HasGarbageArea        int `csv:"has_garbage_area"`
	HasLaundrySpace       int `csv:"has_laundry_space"`
	HasBalcony            int `csv:"has_balcony"`
	HasCityGus            int `csv:"has_city_gus"`
	HasSoundproofRoom     int `csv:"has_soundproof_room"`
	HasWell               int `csv:"has_well"`
	HasRoofBalcony        int `csv:"has_roof_balcony"`
	HasGasHeating         int `csv:"has_gas_heating"`
	HasIndoorLaundry      int `csv:"has_indoor_laundry_space"`
	HasSepticTank         int `csv:"has_septic_tank"`
	HasShoeBox            int `csv:"has_shoe_box"`
	HasOutdoorLaundry     int `csv:"has_outdoor_laundry_space"`
	HasAirConditionerIncl int `csv:"has_air_conditioner_incl"`
	HasBarrierFree        int `csv:"has_barrier_free"`
	HasPropaneGas         int `csv:"has_propane_gas"`
	HasSepticSystem       int `csv:"has_septic_system"`
	HasFloorHeating       int `csv:"has_floor_heating"`
	NumOfEquipments       int `csv:"num_of_equipments"`

	// Parking-derived.
	HasCarParking     int `csv:"has_car_Parking"`
	HasBicycleParking int `csv:"has_bycycle_Parking"`
	HasBikeParking    int `csv:"has_bike_Parking"`

	// Environment-derived.
	SuperDistance  *int `csv:"super_distance"`
	CSDistance     *int `csv:"cs_distance"`
	CountBuildings int  `csv:"count_buildings"`

	// Architecture-derived.
	RankOfMaterial int `csv:"rank_of_material"`

	// Contract-derived.
	IsTemporal int  `csv:"is_temporal"`
	Term       *int `csv:"term"`

	// Composed features.
	IsVintage       int      `csv:"is_vintage"`
	UnitTarget      *float64 `csv:"Unit_Target"`
	MinatoPotential *float64 `csv:"Minato_ward_Potential"`
	ChuoPotential   *float64 `csv:"Chuou_ward_Potential"`
}

// ToListing maps a decoded raw row onto a pipeline record.
func (r RawListing) ToListing(isTrain bool) *Listing {
	return &Listing{
		ID:               r.ID,
		IsTrain:          isTrain,
		Target:           r.Target,
		Location:         r.Location,
		Access:           r.Access,
		FloorPlan:        r.FloorPlan,
		AgeOfBuilding:    r.AgeOfBuilding,
		Direction:        r.Direction,
		AreaText:         r.Area,
		StoryAndFloor:    r.StoryAndFloor,
		BathAndToilet:    r.BathAndToilet,
		Kitchen:          r.Kitchen,
		Broadcasting:     r.Broadcasting,
		IndoorFacilities: r.IndoorFacilities,
		ParkingText:      r.Parking,
		Environment:      r.Environment,
		Architecture:     r.Architecture,
		ContractPeriod:   r.ContractPeriod,
	}
}

// Float returns a pointer to v. Convenience for nullable columns.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
