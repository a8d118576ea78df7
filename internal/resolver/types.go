package resolver

// Outcome records which branch of the resolution produced the target config.
type Outcome int

const (
	// OutcomeFound means the target already existed and was left untouched.
	OutcomeFound Outcome = iota
	// OutcomeCopiedPrivate means the target was created from the private source.
	OutcomeCopiedPrivate
	// OutcomeCopiedExample means the target was created from the example template.
	OutcomeCopiedExample
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeCopiedPrivate:
		return "copied_private"
	case OutcomeCopiedExample:
		return "copied_example"
	default:
		return "unknown"
	}
}

// Paths holds the locations derived from a project root.
type Paths struct {
	Target  string
	Example string
	Private string
}

// Resolver describes the behaviour required from a configuration resolver.
type Resolver interface {
	Resolve(root string) (Outcome, error)
}
