package utils

import (
	"math"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// StopGeohashPrecision is the precision used to index route stops (~5km cells)
const StopGeohashPrecision uint = 5

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodePoint converts a point to a geohash string
func EncodePoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// SearchCells returns the cell containing point plus its eight neighbours
func SearchCells(point GeoPoint, precision uint) []string {
	center := EncodePoint(point, precision)
	return append([]string{center}, geohash.Neighbors(center)...)
}

// InCells reports whether hash falls inside any of cells
func InCells(hash string, cells []string) bool {
	for _, cell := range cells {
		if strings.HasPrefix(hash, cell) {
			return true
		}
	}
	return false
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}
