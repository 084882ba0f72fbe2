package engine

// Lifecycle tracks whether an entity has finished loading.
type Lifecycle int

const (
	Loading Lifecycle = iota
	Ready
)

func (l Lifecycle) String() string {
	switch l {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}
