package utils

import (
	"github.com/mmcloughlin/geohash"
)

// RequestGeohashPrecision yields cells of roughly suburb size, which is
// the granularity coverage matching works at.
const RequestGeohashPrecision = 6

// EncodeLocation converts coordinates to a geohash string
func EncodeLocation(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, RequestGeohashPrecision)
}

// ValidCoordinates reports whether lat/lng are within range
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
