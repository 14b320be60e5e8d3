// README: Negotiation aggregate and status definitions.
package negotiation

import (
	"time"

	"fareline/internal/types"
)

type Status string

const (
	StatusNone            Status = "none"
	StatusPending         Status = "pending"
	StatusAccepted        Status = "accepted"
	StatusRejected        Status = "rejected"
	StatusCountered       Status = "countered"
	StatusCounterAccepted Status = "counter_accepted"
	StatusExpired         Status = "expired"
)

// Negotiation tracks one rider's fare offer and the driver's response for one
// ride. Records are never deleted; terminal rows stay as ride history.
type Negotiation struct {
	ID                 types.ID
	RideID             types.ID
	RiderID            types.ID
	DriverID           *types.ID
	RiderOffer         types.Money
	DriverCounterOffer *types.Money
	Status             Status
	StatusVersion      int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Event struct {
	ID            int64
	NegotiationID types.ID
	FromStatus    Status
	ToStatus      Status
	ActorType     string
	ActorID       *types.ID
	CreatedAt     time.Time
}

// AllowedTransitions represents the negotiation state flow as code.
// accepted, rejected, counter_accepted and expired have no outgoing edges.
var AllowedTransitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusRejected, StatusCountered, StatusExpired},
	StatusCountered: {StatusCounterAccepted, StatusRejected, StatusExpired},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(s Status) bool {
	return len(AllowedTransitions[s]) == 0
}

// IsLive reports whether a negotiation in this status still blocks new
// negotiations for the same ride.
func IsLive(s Status) bool {
	return s == StatusPending || s == StatusCountered
}
