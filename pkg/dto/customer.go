package dto

// CustomerRead is the read model of a customer.
type CustomerRead struct {
	ID             uint
	Name           string
	Identification string
}

// CustomerCreate carries a normalized name and identification for insertion.
type CustomerCreate struct {
	Name           string
	Identification string
}
