package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Search   *SearchHandler
	Booking  *BookingHandler
	Records  *RecordsHandler
	Hotels   *HotelsHandler
	Customer *CustomerHandler
}
