package input

// Action is a semantic user intent derived from a single keypress.
type Action int

const (
	None Action = iota
	Quit
	Pause
	Ok
)

func (a Action) String() string {
	switch a {
	case Quit:
		return "quit"
	case Pause:
		return "pause"
	case Ok:
		return "ok"
	default:
		return "none"
	}
}

// FromByte maps a raw key to its Action. Unrecognized keys map to None.
func FromByte(b byte) Action {
	switch b {
	case 'q':
		return Quit
	case 'p':
		return Pause
	case 'o':
		return Ok
	}
	return None
}
