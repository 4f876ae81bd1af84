package models

type Customer struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateCustomer struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}
