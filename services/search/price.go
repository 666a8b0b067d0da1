package search

import (
	"stayhub/gds"
)

// ExtractPrice pulls the canonical price out of a hotel payload.
//
// Priority is strict: the room offer's TotalFare is the authoritative,
// currency-correct figure from the live search and always wins; the
// top-level Price field is only a fallback. With neither present the price
// is 0 — a placeholder is never fabricated. String-typed fares are parsed
// at the wire layer; a parse failure surfaces as a decode error there and
// never collapses into 0 here.
func ExtractPrice(hotel gds.Hotel) float64 {
	if len(hotel.Rooms) > 0 && hotel.Rooms[0].TotalFare != nil {
		return float64(*hotel.Rooms[0].TotalFare)
	}
	if hotel.Price != nil {
		return float64(*hotel.Price)
	}
	return 0
}

// ExtractRoomPrice is ExtractPrice for a bare room payload.
func ExtractRoomPrice(room gds.Room) float64 {
	if room.TotalFare != nil {
		return float64(*room.TotalFare)
	}
	if room.Price != nil {
		return float64(*room.Price)
	}
	return 0
}
