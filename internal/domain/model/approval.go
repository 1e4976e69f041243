package model

// ApprovalKind tags an ApprovalAction.
type ApprovalKind string

const (
	ApprovalApprove ApprovalKind = "approve"
	ApprovalReject  ApprovalKind = "reject"
)

// ApprovalAction is the decision taken on a pending order.
// Reason is only meaningful for rejections and may be empty.
type ApprovalAction struct {
	Kind   ApprovalKind
	Reason string
}

// Approve builds an approval decision.
func Approve() ApprovalAction {
	return ApprovalAction{Kind: ApprovalApprove}
}

// Reject builds a rejection decision carrying reason verbatim.
func Reject(reason string) ApprovalAction {
	return ApprovalAction{Kind: ApprovalReject, Reason: reason}
}

// RejectionReason returns the reason to send, nil for approvals.
func (a ApprovalAction) RejectionReason() *string {
	if a.Kind != ApprovalReject {
		return nil
	}
	reason := a.Reason
	return &reason
}

// ParseApprovalKind converts wire input into a known kind.
func ParseApprovalKind(raw string) (ApprovalKind, bool) {
	switch k := ApprovalKind(raw); k {
	case ApprovalApprove, ApprovalReject:
		return k, true
	default:
		return "", false
	}
}
