package models

// Reservation mirrors the backend record. StartTime stays an ISO 8601
// string on the wire; parsing happens where a concrete time is needed.
type Reservation struct {
	ID             uint      `json:"id"`
	StartTime      string    `json:"startTime"`
	NumberOfGuests int       `json:"numberOfGuests"`
	CafeTableID    uint      `json:"cafeTableId"`
	CafeTable      CafeTable `json:"cafeTable"`
	CustomerID     uint      `json:"customerId"`
	Customer       Customer  `json:"customer"`
}

// CreateReservation carries the only fields the client ever sends.
type CreateReservation struct {
	StartTime      string `json:"startTime"`
	NumberOfGuests int    `json:"numberOfGuests"`
	CafeTableID    uint   `json:"cafeTableId"`
	CustomerID     uint   `json:"customerId"`
}
