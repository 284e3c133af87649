package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyRevenue is the sales revenue of one calendar day.
type DailyRevenue struct {
	Day     time.Time `json:"day"`
	Revenue int64     `json:"revenue"`
}

// ItemPopularity is the quantity sold of one item.
type ItemPopularity struct {
	ItemID   uuid.UUID `json:"item_id"`
	ItemName string    `json:"item_name"`
	Quantity int64     `json:"quantity"`
}

// ClassRevenue is the pre-order revenue of one student class.
type ClassRevenue struct {
	StudentClass string `json:"student_class"`
	Revenue      int64  `json:"revenue"`
	Orders       int64  `json:"orders"`
}
