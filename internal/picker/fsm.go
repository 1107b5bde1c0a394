package picker

// State is the interaction state of a Controller.
type State int

const (
	// Idle ignores pointer motion.
	Idle State = iota
	// Engaged samples on every pointer move until release or leave.
	Engaged
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Engaged:
		return "engaged"
	default:
		return "unknown"
	}
}

// Effect is the side effect a transition asks for.
type Effect int

const (
	// EffectNone leaves the selection alone.
	EffectNone Effect = iota
	// EffectSample reads the pixel under the pointer into the selection.
	EffectSample
)

func (e Effect) String() string {
	if e == EffectSample {
		return "sample"
	}
	return "none"
}

// Transition is the pure interaction table. A press always engages and
// samples; motion samples only while engaged; release and leave always
// return to Idle.
func Transition(s State, kind EventKind) (State, Effect) {
	switch kind {
	case PointerDown:
		return Engaged, EffectSample
	case PointerMove:
		if s == Engaged {
			return Engaged, EffectSample
		}
		return s, EffectNone
	case PointerUp, PointerLeave:
		return Idle, EffectNone
	default:
		return s, EffectNone
	}
}
