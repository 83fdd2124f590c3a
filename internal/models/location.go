package models

// Point is a validated geographic coordinate pair in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PostalLocation maps a zip code to its canonical point and the region (county) that agencies serve.
type PostalLocation struct {
	ZipCode  string `json:"zip_code"`
	Point    Point  `json:"point"`
	RegionID int64  `json:"region_id"`
}
