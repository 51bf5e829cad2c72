package rootfind

// Outcome is the terminal state of an engine run.
//
//	Running -> Converged | Exhausted | PrecursorFailed
//
// Running is only ever observed by an Observer; a returned Result always
// carries one of the three terminal states.
type Outcome int

const (
	Running Outcome = iota
	Converged
	Exhausted
	PrecursorFailed
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	case PrecursorFailed:
		return "precursor-failed"
	default:
		return "unknown"
	}
}

// MarshalText lets outcomes appear as strings in JSON and YAML output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Criterion records which tolerance ended a converged run.
type Criterion int

const (
	CriterionNone Criterion = iota
	// StepTolerance: the last step (half-width for bisection) was below StepTol.
	StepTolerance
	// ValueTolerance: |f(x)| at the last iterate was below ValueTol.
	ValueTolerance
)

func (c Criterion) String() string {
	switch c {
	case StepTolerance:
		return "step"
	case ValueTolerance:
		return "value"
	default:
		return "none"
	}
}

func (c Criterion) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
