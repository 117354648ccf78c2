package gen

import (
	"fmt"

	"shipment-generator/internal/shipment"
)

// FleetSpec carries the truck and support data the fleet dashboard shows.
type FleetSpec struct {
	SupportPhones []string
	TruckClasses  []string
	DriverNames   []string
	Warehouses    int // warehouse labels run D1..D<Warehouses>
	RegionCodes   int // truck region codes run 1..<RegionCodes>
}

// Truck fabricates truck metadata for a shipment leaving origin.
func Truck(src *Source, origin string, spec FleetSpec) *shipment.Truck {
	return &shipment.Truck{
		LicensePlate: fmt.Sprintf("%dกก %d", src.IntRange(1, 9), src.IntRange(1000, 9999)),
		DriverName:   Pick(src, spec.DriverNames),
		DriverPhone:  fmt.Sprintf("08%d", src.IntRange(10000000, 99999999)),
		TruckClass:   Pick(src, spec.TruckClasses),
		Region:       src.IntRange(1, spec.RegionCodes),
		Depot:        "RDC " + origin,
	}
}

func Warehouse(src *Source, origin string, spec FleetSpec) string {
	return fmt.Sprintf("D%d: RDC %s", src.IntRange(1, spec.Warehouses), origin)
}
