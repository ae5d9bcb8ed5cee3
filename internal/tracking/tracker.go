// Package tracking projects an order status token onto the fixed
// four-step fulfillment timeline. It performs no transitions itself; the
// status source is an external feed.
package tracking

import "github.com/tastebite/orderapi/internal/domain"

// StepState is the display state of one timeline step
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

// stepLabels maps each status to its display label.
var stepLabels = map[domain.OrderStatus]string{
	domain.OrderStatusConfirmed: "Order Confirmed",
	domain.OrderStatusPreparing: "Preparing Food",
	domain.OrderStatusOnTheWay:  "Out for Delivery",
	domain.OrderStatusDelivered: "Delivered",
}

// Placement locates a status token within the fulfillment sequence
type Placement struct {
	Index int
	Known bool
}

// Locate finds the position of a status token. An unrecognized token
// yields Known=false and Index=-1; it must never be coerced to the first
// stage, and callers have to surface it as "status unavailable" rather
// than as a silent default.
func Locate(statusID string) Placement {
	idx := domain.OrderStatus(statusID).Index()
	return Placement{Index: idx, Known: idx >= 0}
}

// StepView is the render model for one timeline step
type StepView struct {
	ID    string
	Label string
	State StepState
}

// Progress renders the full timeline for a status token. Steps before the
// located position are completed, the position itself is current, later
// steps are pending. For an unknown token every step is pending and
// Unavailable is set.
type Progress struct {
	Steps       []StepView
	Unavailable bool
}

// Project builds the timeline view for a status token.
func Project(statusID string) Progress {
	placement := Locate(statusID)
	statuses := domain.Statuses()
	steps := make([]StepView, 0, len(statuses))
	for i, st := range statuses {
		state := StepPending
		if placement.Known {
			switch {
			case i < placement.Index:
				state = StepCompleted
			case i == placement.Index:
				state = StepCurrent
			}
		}
		steps = append(steps, StepView{ID: string(st), Label: stepLabels[st], State: state})
	}
	return Progress{Steps: steps, Unavailable: !placement.Known}
}
