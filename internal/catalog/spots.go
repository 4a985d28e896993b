package catalog

import "github.com/parkit/parkit-backend-go/internal/models"

// parkingSpots is the static parking catalog covering Gujarat. It is loaded
// once at process start and never mutated; all callers share it by reference.
var parkingSpots = []models.ParkingSpot{
	// Ahmedabad
	{
		ID:              "p1",
		Name:            "Riverfront Multi-Level Parking",
		Address:         "Sabarmati Riverfront, Near Ellis Bridge",
		City:            "Ahmedabad",
		Lat:             23.0350,
		Lng:             72.5714,
		TotalSpaces:     450,
		AvailableSpaces: 127,
		PricePerHour:    30,
		Type:            models.ParkingMultiLevel,
		Rating:          4.5,
		Features:        []string{"CCTV", "EV Charging", "Covered", "Valet"},
		OpenHours:       "24/7",
		IsOpen24Hours:   true,
	},
	{
		ID:              "p2",
		Name:            "CG Road Parking Complex",
		Address:         "CG Road, Near Municipal Market",
		City:            "Ahmedabad",
		Lat:             23.0258,
		Lng:             72.5600,
		TotalSpaces:     300,
		AvailableSpaces: 85,
		PricePerHour:    25,
		Type:            models.ParkingUnderground,
		Rating:          4.2,
		Features:        []string{"CCTV", "Covered", "Wheelchair Access"},
		OpenHours:       "6:00 AM - 11:00 PM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p3",
		Name:            "Alpha One Mall Parking",
		Address:         "Alpha One Mall, Vastrapur",
		City:            "Ahmedabad",
		Lat:             23.0305,
		Lng:             72.5179,
		TotalSpaces:     600,
		AvailableSpaces: 234,
		PricePerHour:    40,
		Type:            models.ParkingMultiLevel,
		Rating:          4.7,
		Features:        []string{"CCTV", "EV Charging", "Covered", "Valet", "Car Wash"},
		OpenHours:       "10:00 AM - 11:00 PM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p4",
		Name:            "Manek Chowk Parking",
		Address:         "Manek Chowk, Old City",
		City:            "Ahmedabad",
		Lat:             23.0263,
		Lng:             72.5851,
		TotalSpaces:     150,
		AvailableSpaces: 32,
		PricePerHour:    15,
		Type:            models.ParkingOpen,
		Rating:          3.5,
		Features:        []string{"CCTV", "Security Guard"},
		OpenHours:       "8:00 AM - 12:00 AM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p5",
		Name:            "SG Highway Parking Zone",
		Address:         "SG Highway, Near Pakwan Cross Roads",
		City:            "Ahmedabad",
		Lat:             23.0434,
		Lng:             72.5080,
		TotalSpaces:     350,
		AvailableSpaces: 180,
		PricePerHour:    20,
		Type:            models.ParkingOpen,
		Rating:          3.8,
		Features:        []string{"CCTV", "Wide Spaces", "Bike Parking"},
		OpenHours:       "24/7",
		IsOpen24Hours:   true,
	},
	{
		ID:              "p6",
		Name:            "Palladium Mall Parking",
		Address:         "Palladium Ahmedabad, South Bopal",
		City:            "Ahmedabad",
		Lat:             23.0150,
		Lng:             72.4700,
		TotalSpaces:     500,
		AvailableSpaces: 290,
		PricePerHour:    35,
		Type:            models.ParkingMultiLevel,
		Rating:          4.6,
		Features:        []string{"CCTV", "EV Charging", "Covered", "Valet"},
		OpenHours:       "10:00 AM - 10:30 PM",
		IsOpen24Hours:   false,
	},
	// Surat
	{
		ID:              "p7",
		Name:            "VR Surat Mall Parking",
		Address:         "VR Surat, Dumas Road",
		City:            "Surat",
		Lat:             21.1568,
		Lng:             72.7734,
		TotalSpaces:     400,
		AvailableSpaces: 156,
		PricePerHour:    30,
		Type:            models.ParkingMultiLevel,
		Rating:          4.4,
		Features:        []string{"CCTV", "EV Charging", "Covered", "Valet"},
		OpenHours:       "10:00 AM - 10:00 PM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p8",
		Name:            "Athwa Gate Parking",
		Address:         "Athwa Gate, Ring Road",
		City:            "Surat",
		Lat:             21.1836,
		Lng:             72.8105,
		TotalSpaces:     200,
		AvailableSpaces: 67,
		PricePerHour:    20,
		Type:            models.ParkingOpen,
		Rating:          3.9,
		Features:        []string{"CCTV", "Security Guard", "Bike Parking"},
		OpenHours:       "7:00 AM - 11:00 PM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p9",
		Name:            "Surat Railway Station Parking",
		Address:         "Near Surat Railway Station",
		City:            "Surat",
		Lat:             21.2050,
		Lng:             72.8403,
		TotalSpaces:     250,
		AvailableSpaces: 48,
		PricePerHour:    15,
		Type:            models.ParkingOpen,
		Rating:          3.3,
		Features:        []string{"CCTV", "Security Guard"},
		OpenHours:       "24/7",
		IsOpen24Hours:   true,
	},
	// Vadodara
	{
		ID:              "p10",
		Name:            "Inorbit Mall Parking",
		Address:         "Inorbit Mall, Gorwa Road",
		City:            "Vadodara",
		Lat:             22.3253,
		Lng:             73.1670,
		TotalSpaces:     350,
		AvailableSpaces: 201,
		PricePerHour:    25,
		Type:            models.ParkingMultiLevel,
		Rating:          4.3,
		Features:        []string{"CCTV", "EV Charging", "Covered", "Valet"},
		OpenHours:       "10:00 AM - 10:00 PM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p11",
		Name:            "Alkapuri Parking Zone",
		Address:         "Alkapuri, RC Dutt Road",
		City:            "Vadodara",
		Lat:             22.3100,
		Lng:             73.1720,
		TotalSpaces:     180,
		AvailableSpaces: 95,
		PricePerHour:    20,
		Type:            models.ParkingStreet,
		Rating:          3.7,
		Features:        []string{"CCTV", "Bike Parking"},
		OpenHours:       "8:00 AM - 10:00 PM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p12",
		Name:            "Vadodara Junction Parking",
		Address:         "Near Vadodara Railway Station",
		City:            "Vadodara",
		Lat:             22.3106,
		Lng:             73.1812,
		TotalSpaces:     200,
		AvailableSpaces: 52,
		PricePerHour:    15,
		Type:            models.ParkingOpen,
		Rating:          3.4,
		Features:        []string{"CCTV", "Security Guard"},
		OpenHours:       "24/7",
		IsOpen24Hours:   true,
	},
	// Rajkot
	{
		ID:              "p13",
		Name:            "Crystal Mall Parking",
		Address:         "Crystal Mall, Kalawad Road",
		City:            "Rajkot",
		Lat:             22.2863,
		Lng:             70.7765,
		TotalSpaces:     300,
		AvailableSpaces: 167,
		PricePerHour:    20,
		Type:            models.ParkingMultiLevel,
		Rating:          4.1,
		Features:        []string{"CCTV", "Covered", "Wheelchair Access"},
		OpenHours:       "10:00 AM - 10:00 PM",
		IsOpen24Hours:   false,
	},
	{
		ID:              "p14",
		Name:            "Race Course Parking",
		Address:         "Race Course Road, Rajkot",
		City:            "Rajkot",
		Lat:             22.2950,
		Lng:             70.7964,
		TotalSpaces:     250,
		AvailableSpaces: 140,
		PricePerHour:    15,
		Type:            models.ParkingOpen,
		Rating:          3.6,
		Features:        []string{"CCTV", "Wide Spaces", "Bike Parking"},
		OpenHours:       "24/7",
		IsOpen24Hours:   true,
	},
	// Gandhinagar
	{
		ID:              "p15",
		Name:            "Infocity Parking Complex",
		Address:         "Infocity, GIFT City Road",
		City:            "Gandhinagar",
		Lat:             23.2156,
		Lng:             72.6369,
		TotalSpaces:     500,
		AvailableSpaces: 340,
		PricePerHour:    20,
		Type:            models.ParkingMultiLevel,
		Rating:          4.5,
		Features:        []string{"CCTV", "EV Charging", "Covered", "Bike Parking"},
		OpenHours:       "24/7",
		IsOpen24Hours:   true,
	},
	{
		ID:              "p16",
		Name:            "Mahatma Mandir Parking",
		Address:         "Near Mahatma Mandir Convention Centre",
		City:            "Gandhinagar",
		Lat:             23.2146,
		Lng:             72.6560,
		TotalSpaces:     400,
		AvailableSpaces: 280,
		PricePerHour:    15,
		Type:            models.ParkingOpen,
		Rating:          4.0,
		Features:        []string{"CCTV", "Wide Spaces", "Security Guard"},
		OpenHours:       "6:00 AM - 11:00 PM",
		IsOpen24Hours:   false,
	},
	// Bhavnagar
	{
		ID:              "p17",
		Name:            "Nilambag Circle Parking",
		Address:         "Nilambag Circle, Station Road",
		City:            "Bhavnagar",
		Lat:             21.7645,
		Lng:             72.1519,
		TotalSpaces:     120,
		AvailableSpaces: 78,
		PricePerHour:    10,
		Type:            models.ParkingOpen,
		Rating:          3.5,
		Features:        []string{"CCTV", "Security Guard"},
		OpenHours:       "7:00 AM - 10:00 PM",
		IsOpen24Hours:   false,
	},
	// Junagadh
	{
		ID:              "p18",
		Name:            "Girnar Ropeway Parking",
		Address:         "Near Girnar Ropeway Station",
		City:            "Junagadh",
		Lat:             21.5222,
		Lng:             70.4579,
		TotalSpaces:     200,
		AvailableSpaces: 120,
		PricePerHour:    15,
		Type:            models.ParkingOpen,
		Rating:          3.8,
		Features:        []string{"CCTV", "Wide Spaces"},
		OpenHours:       "6:00 AM - 6:00 PM",
		IsOpen24Hours:   false,
	},
	// Dwarka
	{
		ID:              "p19",
		Name:            "Dwarkadhish Temple Parking",
		Address:         "Near Dwarkadhish Temple",
		City:            "Dwarka",
		Lat:             22.2376,
		Lng:             68.9674,
		TotalSpaces:     300,
		AvailableSpaces: 95,
		PricePerHour:    20,
		Type:            models.ParkingOpen,
		Rating:          3.9,
		Features:        []string{"CCTV", "Security Guard", "Wide Spaces"},
		OpenHours:       "5:00 AM - 10:00 PM",
		IsOpen24Hours:   false,
	},
	// Somnath
	{
		ID:              "p20",
		Name:            "Somnath Temple Parking",
		Address:         "Near Somnath Temple",
		City:            "Somnath",
		Lat:             20.8880,
		Lng:             70.4012,
		TotalSpaces:     350,
		AvailableSpaces: 165,
		PricePerHour:    15,
		Type:            models.ParkingOpen,
		Rating:          4.0,
		Features:        []string{"CCTV", "Security Guard", "Bike Parking"},
		OpenHours:       "5:00 AM - 9:00 PM",
		IsOpen24Hours:   false,
	},
}
