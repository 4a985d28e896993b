package catalog

import "github.com/parkit/parkit-backend-go/internal/models"

// searchLocations is the static place catalog backing the dashboard's
// destination search. Like the parking catalog, it is a process-wide
// constant with no writers.
var searchLocations = []models.SearchLocation{
	// Ahmedabad landmarks
	{ID: "l1", Name: "Sabarmati Ashram", Address: "Ashram Road, Ahmedabad", City: "Ahmedabad", Lat: 23.0607, Lng: 72.5800, Type: models.PlaceLandmark},
	{ID: "l2", Name: "Kankaria Lake", Address: "Maninagar, Ahmedabad", City: "Ahmedabad", Lat: 22.9967, Lng: 72.6010, Type: models.PlaceLandmark},
	{ID: "l3", Name: "Science City", Address: "Sola, Ahmedabad", City: "Ahmedabad", Lat: 23.0731, Lng: 72.5108, Type: models.PlaceLandmark},
	{ID: "l4", Name: "Alpha One Mall", Address: "Vastrapur, Ahmedabad", City: "Ahmedabad", Lat: 23.0305, Lng: 72.5179, Type: models.PlaceMall},
	{ID: "l5", Name: "Palladium Ahmedabad", Address: "South Bopal, Ahmedabad", City: "Ahmedabad", Lat: 23.0150, Lng: 72.4700, Type: models.PlaceMall},
	{ID: "l6", Name: "Civil Hospital Ahmedabad", Address: "Asarwa, Ahmedabad", City: "Ahmedabad", Lat: 23.0504, Lng: 72.6050, Type: models.PlaceHospital},
	{ID: "l7", Name: "Ahmedabad Railway Station", Address: "Kalupur, Ahmedabad", City: "Ahmedabad", Lat: 23.0225, Lng: 72.6006, Type: models.PlaceStation},
	{ID: "l8", Name: "Sardar Vallabhbhai Patel Intl Airport", Address: "Hansol, Ahmedabad", City: "Ahmedabad", Lat: 23.0734, Lng: 72.6266, Type: models.PlaceAirport},
	{ID: "l9", Name: "ISKCON Temple Ahmedabad", Address: "SG Highway, Ahmedabad", City: "Ahmedabad", Lat: 23.0276, Lng: 72.5075, Type: models.PlaceTemple},
	{ID: "l10", Name: "IIM Ahmedabad", Address: "Vastrapur, Ahmedabad", City: "Ahmedabad", Lat: 23.0329, Lng: 72.5268, Type: models.PlaceUniversity},
	{ID: "l11", Name: "Law Garden Market", Address: "Ellisbridge, Ahmedabad", City: "Ahmedabad", Lat: 23.0283, Lng: 72.5616, Type: models.PlaceMarket},
	{ID: "l12", Name: "Manek Chowk", Address: "Old City, Ahmedabad", City: "Ahmedabad", Lat: 23.0263, Lng: 72.5851, Type: models.PlaceMarket},
	// Surat
	{ID: "l13", Name: "Dumas Beach", Address: "Dumas, Surat", City: "Surat", Lat: 21.0870, Lng: 72.7140, Type: models.PlaceLandmark},
	{ID: "l14", Name: "VR Surat Mall", Address: "Dumas Road, Surat", City: "Surat", Lat: 21.1568, Lng: 72.7734, Type: models.PlaceMall},
	{ID: "l15", Name: "Surat Railway Station", Address: "Surat", City: "Surat", Lat: 21.2050, Lng: 72.8403, Type: models.PlaceStation},
	{ID: "l16", Name: "New Civil Hospital Surat", Address: "Majura Gate, Surat", City: "Surat", Lat: 21.1938, Lng: 72.8175, Type: models.PlaceHospital},
	{ID: "l17", Name: "Dutch Garden Surat", Address: "Nanpura, Surat", City: "Surat", Lat: 21.1843, Lng: 72.8232, Type: models.PlaceLandmark},
	// Vadodara
	{ID: "l18", Name: "Laxmi Vilas Palace", Address: "JN Marg, Vadodara", City: "Vadodara", Lat: 22.2930, Lng: 73.1910, Type: models.PlaceLandmark},
	{ID: "l19", Name: "Inorbit Mall Vadodara", Address: "Gorwa, Vadodara", City: "Vadodara", Lat: 22.3253, Lng: 73.1670, Type: models.PlaceMall},
	{ID: "l20", Name: "Vadodara Railway Station", Address: "Vadodara", City: "Vadodara", Lat: 22.3106, Lng: 73.1812, Type: models.PlaceStation},
	{ID: "l21", Name: "Sayaji Garden", Address: "Karelibaug, Vadodara", City: "Vadodara", Lat: 22.3150, Lng: 73.1923, Type: models.PlaceLandmark},
	{ID: "l22", Name: "MS University Vadodara", Address: "Pratapgunj, Vadodara", City: "Vadodara", Lat: 22.3040, Lng: 73.1890, Type: models.PlaceUniversity},
	// Rajkot
	{ID: "l23", Name: "Watson Museum", Address: "Jubilee Garden, Rajkot", City: "Rajkot", Lat: 22.3039, Lng: 70.8022, Type: models.PlaceLandmark},
	{ID: "l24", Name: "Crystal Mall Rajkot", Address: "Kalawad Road, Rajkot", City: "Rajkot", Lat: 22.2863, Lng: 70.7765, Type: models.PlaceMall},
	{ID: "l25", Name: "Race Course Rajkot", Address: "Race Course Rd, Rajkot", City: "Rajkot", Lat: 22.2950, Lng: 70.7964, Type: models.PlaceLandmark},
	// Gandhinagar
	{ID: "l26", Name: "Akshardham Temple", Address: "Sector 20, Gandhinagar", City: "Gandhinagar", Lat: 23.2051, Lng: 72.6563, Type: models.PlaceTemple},
	{ID: "l27", Name: "GIFT City", Address: "GIFT City, Gandhinagar", City: "Gandhinagar", Lat: 23.2156, Lng: 72.6369, Type: models.PlaceLandmark},
	{ID: "l28", Name: "Mahatma Mandir", Address: "Sector 13, Gandhinagar", City: "Gandhinagar", Lat: 23.2146, Lng: 72.6560, Type: models.PlaceLandmark},
	// Other cities
	{ID: "l29", Name: "Statue of Unity", Address: "Kevadia, Narmada", City: "Kevadia", Lat: 21.8380, Lng: 73.7191, Type: models.PlaceLandmark},
	{ID: "l30", Name: "Dwarkadhish Temple", Address: "Dwarka", City: "Dwarka", Lat: 22.2376, Lng: 68.9674, Type: models.PlaceTemple},
	{ID: "l31", Name: "Somnath Temple", Address: "Somnath, Gir Somnath", City: "Somnath", Lat: 20.8880, Lng: 70.4012, Type: models.PlaceTemple},
	{ID: "l32", Name: "Girnar Ropeway", Address: "Junagadh", City: "Junagadh", Lat: 21.5222, Lng: 70.4579, Type: models.PlaceLandmark},
	{ID: "l33", Name: "Rann of Kutch", Address: "Kutch", City: "Kutch", Lat: 23.7337, Lng: 69.8597, Type: models.PlaceLandmark},
	{ID: "l34", Name: "Gir National Park", Address: "Sasan Gir, Junagadh", City: "Junagadh", Lat: 21.1243, Lng: 70.7933, Type: models.PlaceLandmark},
}
