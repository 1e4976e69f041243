package dto

// ReviewResponse is the approval dialog state.
type ReviewResponse struct {
	Open            bool           `json:"open"`
	Order           *OrderResponse `json:"order,omitempty"`
	RejectionReason string         `json:"rejection_reason"`
}

// ReasonRequest carries the rejection reason; empty is allowed.
type ReasonRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

// DecisionRequest picks approve or reject for the order under review.
type DecisionRequest struct {
	Action string `json:"action" binding:"required,oneof=approve reject"`
}
