package models

type MenuItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsPopular   bool    `json:"isPopular"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

type CreateMenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsPopular   bool    `json:"isPopular"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
