package rules

import "math"

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance in kilometres between two
// lat/lng points on a spherical Earth.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLng := (lng2 - lng1) * (math.Pi / 180)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*(math.Pi/180))*math.Cos(lat2*(math.Pi/180))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// BoundingBoxDelta converts a radius in kilometres to a lat/lng degree
// delta using the flat-earth approximation of 111 km per degree. Recipient
// estimation is deliberately a rectangular geofence, not a true circle.
func BoundingBoxDelta(radiusKm float64) float64 {
	return radiusKm / 111
}
