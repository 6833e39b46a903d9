package geo

import "math"

// EarthRadiusKm is Earth's mean radius.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometers between two
// latitude/longitude points (degrees), via the Haversine formula. Every
// distance the system reports goes through this one function.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dlon/2)*math.Sin(dlon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
