package booking

type Status string

const (
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusConfirmed      Status = "CONFIRMED"
	StatusCancelled      Status = "CANCELLED"
	StatusRefunded       Status = "REFUNDED"
	StatusCompleted      Status = "COMPLETED"
)

var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusConfirmed, StatusCancelled, StatusRefunded},
	StatusConfirmed:      {StatusCancelled, StatusRefunded},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCancelled, StatusRefunded, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusRefunded, StatusCompleted:
		return true
	default:
		return false
	}
}

// HoldsSlot reports whether a booking in this status blocks the coach's calendar.
func (s Status) HoldsSlot() bool {
	return s == StatusPendingPayment || s == StatusConfirmed
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SourcesFor lists the statuses from which next is reachable. Used for guarded updates.
func SourcesFor(next Status) []Status {
	var out []Status
	for from, tos := range transitions {
		for _, to := range tos {
			if to == next {
				out = append(out, from)
			}
		}
	}
	return out
}

func NonTerminalStatuses() []Status {
	return []Status{StatusPendingPayment, StatusConfirmed}
}
