package dto

// CreateCounterpartyRequest creates a customer or supplier.
type CreateCounterpartyRequest struct {
	Name     string `json:"name" binding:"required"`
	Kind     string `json:"kind" binding:"required,oneof=customer supplier"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Category string `json:"category"`

	OpeningBalance  *string `json:"openingBalance"`
	OpeningCurrency string  `json:"openingCurrency"`
	OpeningDate     string  `json:"openingDate"`
	OpeningNote     string  `json:"openingNote"`
}

// UpdateCounterpartyRequest edits mutable counterparty fields.
type UpdateCounterpartyRequest struct {
	Name     string `json:"name" binding:"required"`
	Version  int    `json:"version" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Category string `json:"category"`

	OpeningBalance  *string `json:"openingBalance"`
	OpeningCurrency string  `json:"openingCurrency"`
	OpeningDate     string  `json:"openingDate"`
	OpeningNote     string  `json:"openingNote"`
}
