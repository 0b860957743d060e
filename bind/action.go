package bind

// Action is an application-defined input response id
type Action uint8

const (
	// DefaultMaxActions is the action limit of a Binder built without WithMaxActions
	DefaultMaxActions = 32
	// MaxActionsLimit is the largest supported action limit
	MaxActionsLimit = 256
)

// actionSet is a fixed 256-bit set, one bit per possible Action
type actionSet [MaxActionsLimit / 64]uint64

func (s *actionSet) set(a Action) { s[a>>6] |= 1 << (a & 63) }

func (s *actionSet) has(a Action) bool { return s[a>>6]&(1<<(a&63)) != 0 }

func (s *actionSet) clear() { *s = actionSet{} }

// slot is an optional binding for a fixed input position
type slot struct {
	exists bool
	action Action
}

func (s *slot) bind(a Action) {
	s.exists = true
	s.action = a
}

func (s *slot) unbind() { s.exists = false }
