// Package store holds the shapes exported by the store service.
package store

import (
	"fmt"
	"time"
)

// Base carries the audit columns shared by stored rows.
type Base struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	revision  int
}

// Record carries only the row identity.
type Record struct {
	ID int64 `json:"id"`
}

// Person is exported field by field: only marked fields are described.
//
//shape:export
type Person struct {
	//shape:export
	Name string `json:"name"`
	Age  int    `json:"age" shape:""`

	Email    string `json:"email"`
	Nickname *string
}

// Greeting is a method and never shows up as a member.
func (p *Person) Greeting() string {
	return fmt.Sprintf("hello, %s", p.Name)
}

// Empty has no own fields; its description comes from Record.
//
//shape:export
type Empty struct {
	Record
}

// Nothing has neither own nor promoted fields.
//
//shape:export
type Nothing struct{}

// String implements fmt.Stringer.
func (Nothing) String() string { return "nothing" }

// Order is marked without marked fields, so all fields are described.
//
//shape:export
type Order struct {
	Base
	Number     string
	TotalCents int64
	Items      []OrderItem
	Status     OrderStatus
}

// OrderItem is not marked itself; one of its fields is.
type OrderItem struct {
	ProductID int64 `shape:"export"`
	Quantity  int
}

// OrderStatus is a non-struct type; marking it has no effect.
//
//shape:export
type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
	StatusPaid    OrderStatus = "PAID"
)

// Left and Right both declare Code, which makes Code ambiguous in Both.
type Left struct {
	Code int
}

type Right struct {
	Code int
	Note string
}

// Both is marked alone and embeds two structs with a clashing field.
//
//shape:export
type Both struct {
	Left
	*Right
	Label string
}

// Shadow declares ID itself, hiding Record.ID.
//
//shape:export
type Shadow struct {
	Record
	ID string
}

// Audited and Tracked both embed Base.
type Audited struct {
	Base
}

type Tracked struct {
	Base
}

// Diamond reaches Base twice at the same depth, so none of Base's fields
// are promoted.
//
//shape:export
type Diamond struct {
	Audited
	Tracked
	Label string
}

// Envelope wraps an anonymous struct whose marked field has no named owner.
type Envelope struct {
	Meta struct {
		//shape:export
		Trace string
	}
}
