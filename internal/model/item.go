package model

import "time"

// Item represents a store item. UserID is the owner and is set once at
// creation; updates never touch it.
type Item struct {
	ID          string
	Title       string
	Description string
	Image       string
	LargeImage  string
	Price       int64 // cents
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemUpdate carries the mutable item fields. Nil pointers leave the
// corresponding column untouched; the item ID and owner are never part
// of an update.
type ItemUpdate struct {
	Title       *string
	Description *string
	Image       *string
	LargeImage  *string
	Price       *int64
}
