package catalog

// Regional is the 15-province table used by the region-filtered generator.
func Regional() *Catalog {
	return &Catalog{Regions: []Region{
		{Name: "Central", Provinces: []Province{
			{"กรุงเทพฯ", 13.7563, 100.5018},
			{"ชลบุรี", 13.3611, 100.9838},
			{"ระยอง", 12.6819, 101.2455},
			{"พิษณุโลก", 16.8205, 100.2656},
		}},
		{Name: "North", Provinces: []Province{
			{"เชียงใหม่", 18.7883, 98.9853},
			{"ลำปาง", 18.2861, 99.5047},
		}},
		{Name: "Northeast", Provinces: []Province{
			{"ขอนแก่น", 16.4419, 102.8350},
			{"อุดรธานี", 17.4156, 102.7850},
			{"สกลนคร", 17.1680, 104.1456},
			{"นครราชสีมา", 14.9799, 102.0977},
			{"อุบลราชธานี", 15.2449, 104.8470},
		}},
		{Name: "South", Provinces: []Province{
			{"หาดใหญ่", 6.9969, 100.4669},
			{"สุราษฎร์ธานี", 9.0397, 99.1715},
			{"ภูเก็ต", 7.8804, 98.3923},
			{"นครศรีธรรมราช", 8.4316, 99.9686},
		}},
	}}
}

// Fleet is the two-provinces-per-region table used by the fleet generator.
func Fleet() *Catalog {
	return &Catalog{Regions: []Region{
		{Name: "North", Provinces: []Province{
			{"เชียงใหม่", 18.7883, 98.9853},
			{"ลำปาง", 18.2868, 99.4981},
		}},
		{Name: "Central", Provinces: []Province{
			{"กรุงเทพฯ", 13.7563, 100.5018},
			{"ชลบุรี", 13.3621, 100.9841},
		}},
		{Name: "South", Provinces: []Province{
			{"หาดใหญ่", 6.9969, 100.4669},
			{"สุราษฎร์ธานี", 9.0397, 99.1715},
		}},
		{Name: "Northeast", Provinces: []Province{
			{"ขอนแก่น", 16.4419, 102.8355},
			{"อุดรธานี", 17.4156, 102.785},
		}},
	}}
}
