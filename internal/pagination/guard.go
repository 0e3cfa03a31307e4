package pagination

// Decision is the outcome of a navigation intent. Rejected decisions carry no page and
// callers leave their state unchanged.
type Decision struct {
	Accepted bool `json:"accepted"`
	Page     int  `json:"page,omitempty"`
}

// Accepted returns an accepted decision for target.
func Accepted(target int) Decision { return Decision{Accepted: true, Page: target} }

// Rejected returns a rejected decision.
func Rejected() Decision { return Decision{} }

// RequestPageChange validates a move from current to target in a listing of total pages.
// Out-of-range targets and moves to the page already shown are rejected.
func RequestPageChange(target, total, current int) Decision {
	if target < 1 || target > total || target == current {
		return Rejected()
	}
	return Accepted(target)
}

// Next requests the page after current.
func Next(total, current int) Decision {
	if current >= total {
		return Rejected()
	}
	return RequestPageChange(current+1, total, current)
}

// Previous requests the page before current.
func Previous(total, current int) Decision {
	if current <= 1 {
		return Rejected()
	}
	return RequestPageChange(current-1, total, current)
}
