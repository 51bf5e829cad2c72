package rootfind

// Event is delivered to an Observer for every iterate an engine appends,
// seeds included (Iter 0), and once more when the run terminates.
type Event struct {
	Method  Method
	Iter    int
	Iterate Iterate
	// Outcome is Running for iterate events and the terminal state for the
	// final event.
	Outcome Outcome
	Reason  error
}

// Observer receives engine progress. It must not retain or mutate engine
// state; a nil Observer is skipped.
type Observer func(Event)

func (o Observer) emit(e Event) {
	if o != nil {
		o(e)
	}
}
