// Package dto defines the request and response shapes of the v1 API.
package dto

// IDResponse returns the identifier of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse confirms an operation with no payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
