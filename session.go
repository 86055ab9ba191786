package cropbox

// Drag describes the progress of a pointer drag gesture.
type Drag struct {
	// Start is where the pointer was when the gesture began.
	Start Point

	// Translation is the total distance the pointer has moved since
	// the gesture began.
	Translation Point
}

// Session is the state of a single drag gesture. It records the box
// as it was when the gesture started and the corner, if any, that the
// gesture grabbed. The zero Session is idle.
//
// A Session is a plain value. It is returned from every update so
// that the caller can hold onto it for the next one, and it is
// discarded when the gesture ends.
type Session struct {
	Start  Rect
	Corner Corner
	active bool
}

// Active reports whether s belongs to a gesture in progress.
func (s Session) Active() bool {
	return s.active
}

// Resizing reports whether s is resizing the box rather than moving
// it.
func (s Session) Resizing() bool {
	return s.active && (s.Corner != CornerNone)
}

// End returns the idle session that follows s.
func (s Session) End() Session {
	return Session{}
}

// Box holds the constraints that a crop box is dragged under.
type Box struct {
	// Frame is the size of the container that the box must stay
	// inside of. It may be changed between gestures, such as when the
	// container is laid out again.
	Frame Point

	// MinSize is the smallest that the box can be resized to.
	MinSize Point

	// HitDistance is how close to a corner the pointer has to start
	// for a drag to resize instead of move. If it is zero,
	// DefaultHitDistance is used.
	HitDistance float64
}

// NewBox returns a Box for a container of the given size with the
// default minimum size and hit distance.
func NewBox(frame Point) Box {
	return Box{
		Frame:       frame,
		MinSize:     DefaultMinSize,
		HitDistance: DefaultHitDistance,
	}
}

func (b Box) hitDistance() float64 {
	if b.HitDistance <= 0 {
		return DefaultHitDistance
	}
	return b.HitDistance
}

// Begin starts a session for a gesture that started at p while the
// box was at r. Whether the gesture moves or resizes the box is
// decided here, once, and holds until the session ends.
func (b Box) Begin(r Rect, p Point) Session {
	return Session{
		Start:  r,
		Corner: HitTest(p, r, b.hitDistance()),
		active: true,
	}
}

// Apply returns the box that s produces when the pointer has moved a
// total of t since the gesture began. Applying an idle session
// returns its zero start rectangle unchanged.
func (b Box) Apply(s Session, t Point) Rect {
	if !s.active {
		return s.Start
	}
	if s.Corner == CornerNone {
		return Move(s.Start, b.Frame, t)
	}
	return Resize(s.Start, s.Corner, b.Frame, t, b.MinSize)
}

// Update advances a gesture. If s is idle, a new session is begun
// from the box's current position r and the gesture's start point.
// Otherwise r is ignored and the result is derived from the rectangle
// captured when the session began.
func (b Box) Update(s Session, r Rect, d Drag) (Session, Rect) {
	if !s.active {
		s = b.Begin(r, d.Start)
	}
	return s, b.Apply(s, d.Translation)
}
