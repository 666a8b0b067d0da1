package search

import (
	"fmt"

	"stayhub/gds"
	"stayhub/models"
)

// Allocate produces the per-room guest manifest used by every downstream
// provider call. The same allocation must flow through search, booking-code
// resolution and the final booking request; this is the single
// implementation all call sites share.
//
// When the caller supplies an explicit per-room distribution with real
// content (any room with more than one adult or any children), it is used
// verbatim — it comes from the room-by-room guest editor and is trusted.
// Otherwise guests are split evenly: every room except the last gets the
// floor share, the last room absorbs the remainder so totals reconcile
// exactly. Children ages are sliced into contiguous blocks, tail to the
// last room. A room can never have zero adults.
func Allocate(adults, children, rooms int, childrenAges []int, explicit []models.RoomGuests) (models.RoomAllocation, error) {
	if rooms < 1 {
		return nil, fmt.Errorf("room count must be at least 1, got %d", rooms)
	}
	if adults < 1 {
		return nil, fmt.Errorf("adult count must be at least 1, got %d", adults)
	}

	if hasDetailedDistribution(explicit) {
		alloc := make(models.RoomAllocation, 0, len(explicit))
		for _, room := range explicit {
			a := room.Adults
			if a < 1 {
				a = 1
			}
			ages := room.ChildrenAges
			if ages == nil {
				ages = []int{}
			}
			alloc = append(alloc, models.RoomGuests{
				Adults:       a,
				Children:     room.Children,
				ChildrenAges: ages,
			})
		}
		return alloc, nil
	}

	adultsPerRoom := adults / rooms
	childrenPerRoom := children / rooms

	alloc := make(models.RoomAllocation, 0, rooms)
	for i := 0; i < rooms; i++ {
		last := i == rooms-1

		roomAdults := adultsPerRoom
		roomChildren := childrenPerRoom
		if last {
			roomAdults = adults - adultsPerRoom*(rooms-1)
			roomChildren = children - childrenPerRoom*(rooms-1)
		}
		if roomAdults < 1 {
			roomAdults = 1
		}

		startIdx := i * childrenPerRoom
		endIdx := startIdx + childrenPerRoom
		if last {
			endIdx = len(childrenAges)
		}
		if startIdx > len(childrenAges) {
			startIdx = len(childrenAges)
		}
		if endIdx > len(childrenAges) {
			endIdx = len(childrenAges)
		}
		roomAges := append([]int{}, childrenAges[startIdx:endIdx]...)

		alloc = append(alloc, models.RoomGuests{
			Adults:       roomAdults,
			Children:     roomChildren,
			ChildrenAges: roomAges,
		})
	}
	return alloc, nil
}

// hasDetailedDistribution reports whether the explicit distribution carries
// real content rather than the editor's untouched default of one adult per
// room.
func hasDetailedDistribution(explicit []models.RoomGuests) bool {
	if len(explicit) == 0 {
		return false
	}
	for _, room := range explicit {
		if room.Adults > 1 || room.Children > 0 {
			return true
		}
	}
	return false
}

// DefaultAllocation is the 1-room/2-adult manifest used when no guest
// context is available at all.
func DefaultAllocation() models.RoomAllocation {
	return models.RoomAllocation{
		{Adults: 2, Children: 0, ChildrenAges: []int{}},
	}
}

// ToPaxRooms converts an allocation into the provider's wire shape.
func ToPaxRooms(alloc models.RoomAllocation) []gds.PaxRoom {
	pax := make([]gds.PaxRoom, 0, len(alloc))
	for _, room := range alloc {
		ages := room.ChildrenAges
		if ages == nil {
			ages = []int{}
		}
		pax = append(pax, gds.PaxRoom{
			Adults:       room.Adults,
			Children:     room.Children,
			ChildrenAges: ages,
		})
	}
	return pax
}
