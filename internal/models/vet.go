package models

import "encoding/json"

// Location is a geographic point.
type Location struct {
	Lat float64 `json:"lat" example:"51.5074"`
	Lng float64 `json:"lng" example:"-0.1278"`
}

// NearbyVet is the curated subset of a places search result.
// swagger:model NearbyVet
type NearbyVet struct {
	PlaceID          string    `json:"placeId"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	Location         *Location `json:"location"`
	Rating           *float64  `json:"rating"`
	UserRatingsTotal *int      `json:"userRatingsTotal"`
	IsOpenNow        *bool     `json:"isOpenNow"`
}

// VetDetails is the curated subset of a place details result.
// swagger:model VetDetails
type VetDetails struct {
	PlaceID      string          `json:"placeId"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	Location     *Location       `json:"location"`
	Rating       *float64        `json:"rating"`
	Reviews      json.RawMessage `json:"reviews" swaggertype:"array,object"`
	OpeningHours []string        `json:"openingHours"`
	Website      string          `json:"website"`
}
