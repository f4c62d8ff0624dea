package dto

// RecordRateRequest stores a daily exchange-rate snapshot.
type RecordRateRequest struct {
	SAR  string `json:"sar" binding:"required"`
	OMR  string `json:"omr" binding:"required"`
	Date string `json:"date"`
}

// FinalizeClosingRequest seals a day against the counted drawer.
type FinalizeClosingRequest struct {
	Date       string `json:"date"`
	ActualCash string `json:"actualCash" binding:"required"`
	Note       string `json:"note"`
}
