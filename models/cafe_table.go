package models

type CafeTable struct {
	ID          uint `json:"id"`
	TableNumber int  `json:"tableNumber"`
	Capacity    int  `json:"capacity"`
}

type CreateCafeTable struct {
	TableNumber int `json:"tableNumber"`
	Capacity    int `json:"capacity"`
}
