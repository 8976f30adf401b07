package game

// Agent is anything that decides for a participant: a human at a prompt,
// the dealer heuristic, or an external learned policy. Agents receive an
// immutable View and the currently valid actions and must not mutate the
// run themselves.
type Agent interface {
	MakeDecision(view View, validActions []Action) Action
}

// RejectionAware agents are told when the engine refuses their decision,
// before being asked again.
type RejectionAware interface {
	Rejected(action Action, err error)
}
