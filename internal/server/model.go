package server

import (
	"time"

	"github.com/jeevanlakshya/plan733/internal/calculation"
	"github.com/jeevanlakshya/plan733/internal/domain"
)

// QuoteRequest selects an (age, term) pair
type QuoteRequest struct {
	Age  int `json:"age"`
	Term int `json:"term"`
}

// QuoteResponse carries the quote and its headline figures
type QuoteResponse struct {
	Quote   domain.Quote               `json:"quote"`
	Display calculation.DisplayFigures `json:"display"`
}

// PayloadRequest attaches a goal to a selection
type PayloadRequest struct {
	GoalID string `json:"goalId"`
	Age    int    `json:"age"`
	Term   int    `json:"term"`
}

// PayloadResponse returns the hand-off token alongside the payload
type PayloadResponse struct {
	Token     string                 `json:"token"`
	ExpiresAt time.Time              `json:"expiresAt"`
	Payload   domain.GoalPlanPayload `json:"payload"`
}

// AgesResponse lists the entry ages on offer
type AgesResponse struct {
	Ages []int `json:"ages"`
}

// TermsResponse lists the terms offered at an age
type TermsResponse struct {
	Age   int   `json:"age"`
	Terms []int `json:"terms"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}
