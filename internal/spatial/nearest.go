package spatial

import (
	"sort"

	"github.com/parkit/parkit-backend-go/internal/models"
)

// SpotDistance pairs a catalog entry with its distance from a query point
type SpotDistance struct {
	Spot       models.ParkingSpot
	DistanceKm float64
}

// NearestSpots returns the k catalog entries closest to (lat, lng), sorted
// by ascending distance. Ties keep catalog order (stable sort). When k
// exceeds the catalog size the whole catalog is returned sorted; k below
// one returns nothing.
func NearestSpots(spots []models.ParkingSpot, lat, lng float64, k int) []SpotDistance {
	result := make([]SpotDistance, 0, len(spots))
	for _, spot := range spots {
		result = append(result, SpotDistance{
			Spot:       spot,
			DistanceKm: HaversineDistance(lat, lng, spot.Lat, spot.Lng),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	if k < 0 {
		k = 0
	}
	if k > len(result) {
		k = len(result)
	}
	return result[:k]
}
