package gen

import (
	"time"

	"shipment-generator/internal/catalog"
	"shipment-generator/internal/shipment"
)

// Profile is the full, immutable description of one fixture generator.
type Profile struct {
	Name    string
	Output  string // file name the fixture is written to
	Catalog *catalog.Catalog

	Companies CompanyPlan
	Selector  PairSelector
	Timing    Timing
	Status    StatusPolicy
	// IdleProgress is reported for every status other than in_transit.
	IdleProgress int

	DistanceKm    [2]float64
	DistanceWhole bool // draw whole kilometres instead of one decimal

	Route  RouteSpec
	Orders OrderSpec

	// Fleet, when set, adds truck, region and warehouse data.
	Fleet *FleetSpec

	// Base anchors every timestamp. Zero means the generator clock's now.
	Base time.Time
}

const (
	Regional = "regional"
	Fleet    = "fleet"
)

// Profiles lists the built-in profile names in run order.
var Profiles = []string{Regional, Fleet}

// Lookup returns the built-in profile by name.
func Lookup(name string) (Profile, bool) {
	switch name {
	case Regional:
		return RegionalProfile(), true
	case Fleet:
		return FleetProfile(), true
	}
	return Profile{}, false
}

// RegionalProfile ships between provinces of one catalog, keeping South and
// Northeast origins inside their own region.
func RegionalProfile() Profile {
	return Profile{
		Name:    Regional,
		Output:  "shipments_region_filtered.json",
		Catalog: catalog.Regional(),
		Companies: Quotas{
			{Company: "TBL", Count: 450},
			{Company: "SERMSUK", Count: 450},
			{Company: "HAVI", Count: 100},
		},
		Selector: RegionRestricted{Restricted: []string{"South", "Northeast"}},
		Timing:   ConsistentTiming{MaxDepartHours: 72, MinDuration: 5, MaxDuration: 48},
		Status: WeightedStatus{
			{Status: shipment.StatusInTransit, Share: 0.5},
			{Status: shipment.StatusAvailable, Share: 0.3},
			{Status: shipment.StatusBroken, Share: 0.2},
		},
		IdleProgress: 100,
		DistanceKm:   [2]float64{50, 1500},
		Route:        RouteSpec{Waypoints: 6, Jitter: 0.2, Precision: 6},
		Orders: OrderSpec{
			Count:    [2]int{1, 3},
			Quantity: [2]int{1, 20},
			Prefix:   CompanyPrefix,
		},
		Base: time.Date(2025, time.May, 19, 6, 0, 0, 0, time.Local),
	}
}

// FleetProfile mirrors the fleet dashboard feed: intra-region trips, status
// blocks and truck metadata. Its departure and arrival are drawn independently.
func FleetProfile() Profile {
	return Profile{
		Name:    Fleet,
		Output:  "shipments_1000.json",
		Catalog: catalog.Fleet(),
		Companies: Uniform{
			Companies: []string{"TBL", "SERMSUK", "Longtitude"},
			Count:     1000,
		},
		Selector: SameRegion{},
		Timing: IndependentTiming{
			DepartDays:    [2]int{-3, 3},
			ArriveDays:    [2]int{0, 4},
			ArriveHours:   [2]int{2, 8},
			DurationHours: [2]float64{2, 10},
		},
		Status: BlockStatus{
			{Status: shipment.StatusInTransit, Share: 0.8},
			{Status: shipment.StatusAvailable, Share: 0.1},
			{Status: shipment.StatusBroken, Share: 0.1},
		},
		IdleProgress:  0,
		DistanceKm:    [2]float64{100, 600},
		DistanceWhole: true,
		Route:         RouteSpec{Waypoints: 2, Jitter: 0.05, Precision: 4},
		Orders: OrderSpec{
			Count:    [2]int{1, 1},
			Quantity: [2]int{5, 30},
			Prefix:   FixedPrefix("ORD-TBL"),
		},
		Fleet: &FleetSpec{
			SupportPhones: []string{"1300-000-1234", "1300-000-9101", "1300-000-1122"},
			TruckClasses:  []string{"6 ล้อ", "10 ล้อ", "6WB-8PL"},
			DriverNames:   []string{"สมชาย", "จารุ", "สุพจน์", "นายพิทักษ์", "ชัยพร พลาซี", "ธีรวัฒน์", "สมบัติ", "นเรศ"},
			Warehouses:    8,
			RegionCodes:   4,
		},
	}
}

// ConsistentFleetTiming replaces the fleet's independent draws with a
// departure-then-duration rule of the same scale.
func ConsistentFleetTiming() Timing {
	return ConsistentTiming{MaxDepartHours: 72, MinDuration: 2, MaxDuration: 10}
}
