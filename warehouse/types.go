// Package warehouse holds shapes that embed types from store.
package warehouse

import (
	"time"

	"shape-exporter/store"
)

// Address represents a physical shipping address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// Shipment is marked and has marked fields, so only those are described.
//
//shape:export
type Shipment struct {
	store.Record

	//shape:export
	Destination *Address
	Weight      float64
	ShippedAt   time.Time //shape:export
}

// Crate embeds store.Base from another package: its unexported field
// is not promoted.
//
//shape:export
type Crate struct {
	store.Base
	Label string
	count int
}
