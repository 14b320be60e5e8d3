// README: Common value types shared across modules.
package types

// ID is an opaque entity identifier (hex string from the generator).
type ID string

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
