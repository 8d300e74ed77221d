// Package domain holds the payment submission model and the stored
// payment record produced by a successful bank round-trip.
package domain

// PaymentStatus is the bank's binary decision on a submission. There is no
// third value: a processing failure never produces a record at all.
type PaymentStatus string

const (
	StatusAuthorized PaymentStatus = "Authorized"
	StatusDeclined   PaymentStatus = "Declined"
)

// Submission is the caller's raw payment request. It carries no identity
// and is constructed once per request; validation happens downstream.
type Submission struct {
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	Currency    string
	CVV         string
	Amount      int64
}

// Payment is the stored record of a processed submission. It is created
// once, inserted into the store once, and never mutated afterwards.
type Payment struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour string        `json:"card_number_last_four"`
	ExpiryMonth        int           `json:"expiry_month"`
	ExpiryYear         int           `json:"expiry_year"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}
