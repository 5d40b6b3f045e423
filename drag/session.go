package drag

import "orthodrag/geometry"

// Axis names the axes a segment is allowed to move along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisBoth
	AxisNone
)

// String returns the string representation of an Axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisBoth:
		return "both"
	case AxisNone:
		return "none"
	default:
		return "unknown"
	}
}

// Constraints describes how far and along which axis a segment may be
// dragged. Computed per segment, never stored.
type Constraints struct {
	Axis           Axis
	SnapToGrid     bool
	PreserveLength bool
	MinDistance    float64
	MaxDistance    float64
}

// State is a snapshot of one drag gesture: the segment being dragged,
// the midpoint it started from, the raw and constrained pointer-derived
// positions, and the pointer-to-midpoint offset captured at press time.
type State struct {
	SegmentID           string
	StartPosition       geometry.Point
	CurrentPosition     geometry.Point
	ConstrainedPosition geometry.Point
	Offset              geometry.Point
}

// Session is the gesture state for one drag. The caller creates it with
// Handler.Start, threads it through Update, and finishes with End; it
// is never stored inside the handler, so independent editors (and
// tests) can run gestures concurrently.
type Session struct {
	state  State
	active bool
}

// Active reports whether the session still accepts updates.
func (s *Session) Active() bool {
	return s != nil && s.active
}

// State returns the current snapshot and whether the session exists.
func (s *Session) State() (State, bool) {
	if s == nil {
		return State{}, false
	}
	return s.state, true
}

// Start begins a drag on segment at the given pointer position,
// recording the offset between the pointer and the segment midpoint so
// later updates track the midpoint rather than the grab point.
func (h *Handler) Start(segment geometry.EdgeSegment, mouse geometry.Point) *Session {
	return &Session{
		state: State{
			SegmentID:           segment.ID,
			StartPosition:       segment.Midpoint,
			CurrentPosition:     mouse,
			ConstrainedPosition: segment.Midpoint,
			Offset:              mouse.Sub(segment.Midpoint),
		},
		active: true,
	}
}

// Update advances the drag to a new pointer position. It returns false
// when the session is nil, already ended, or tracking a different
// segment id (a stale callback); the geometry is then unchanged.
//
// The candidate midpoint is the pointer minus the press offset, with
// the axis parallel to the segment pinned to the start position. With
// SnapToGrid set, the delta from the start position (not the absolute
// coordinate) is rounded to the grid, so snapping stays anchored to the
// original layout.
func (h *Handler) Update(session *Session, mouse geometry.Point, segment geometry.EdgeSegment, constraints Constraints) (State, bool) {
	if !session.Active() || session.state.SegmentID != segment.ID {
		return State{}, false
	}

	start := session.state.StartPosition
	pos := mouse.Sub(session.state.Offset)
	if segment.Direction == geometry.Horizontal {
		pos.X = start.X
	} else {
		pos.Y = start.Y
	}

	if constraints.SnapToGrid {
		delta := pos.Sub(start)
		delta.X = geometry.Snap(delta.X, h.grid())
		delta.Y = geometry.Snap(delta.Y, h.grid())
		pos = start.Add(delta)
	}

	session.state.CurrentPosition = mouse
	session.state.ConstrainedPosition = pos
	return session.state, true
}

// End finishes the gesture and returns the final state for commit.
// Ending an already-ended or nil session returns false.
func (h *Handler) End(session *Session) (State, bool) {
	if !session.Active() {
		return State{}, false
	}
	session.active = false
	return session.state, true
}
