package journey

// Status classifies a node's position in the listening journey.
type Status string

const (
	StatusDone     Status = "done"     // listened and liked
	StatusCurrent  Status = "current"  // currently listening
	StatusNext     Status = "next"     // next in the queue
	StatusRejected Status = "rejected" // did not like
	StatusBacklog  Status = "backlog"  // not yet scheduled
)

// Statuses lists the known statuses in legend order.
var Statuses = []Status{StatusDone, StatusCurrent, StatusNext, StatusRejected, StatusBacklog}

// ColorPair is the fill and border color of a node, as Graphviz color strings.
type ColorPair struct {
	Background string
	Border     string
}

var palette = map[Status]ColorPair{
	StatusDone:     {Background: "#e6fffa", Border: "#2c7a7b"}, // mint, teal border
	StatusCurrent:  {Background: "#ebf8ff", Border: "#2b6cb0"}, // blue
	StatusNext:     {Background: "#fffaf0", Border: "#dd6b20"}, // orange
	StatusRejected: {Background: "#fff5f5", Border: "#c53030"}, // red
	StatusBacklog:  {Background: "#f7fafc", Border: "#a0aec0"}, // grey
}

// Colors returns the color pair for s.
// Statuses outside the fixed table get the backlog pair.
func Colors(s Status) ColorPair {
	if c, ok := palette[s]; ok {
		return c
	}
	return palette[StatusBacklog]
}

// Known reports whether s is one of the five defined statuses.
func (s Status) Known() bool {
	_, ok := palette[s]
	return ok
}

// String returns the status name, or "backlog" for the zero value.
func (s Status) String() string {
	if s == "" {
		return string(StatusBacklog)
	}
	return string(s)
}
