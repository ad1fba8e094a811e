package action

// Queue is an ordered, immutable list of actions. Execution order is
// insertion order.
type Queue struct {
	actions []Action
}

// NewQueue copies actions into a new Queue.
func NewQueue(actions ...Action) Queue {
	return Queue{actions: append([]Action(nil), actions...)}
}

// Len returns the number of queued actions.
func (q Queue) Len() int {
	return len(q.actions)
}

// Empty reports whether no action was requested.
func (q Queue) Empty() bool {
	return len(q.actions) == 0
}

// Actions returns a copy of the queued actions in execution order.
func (q Queue) Actions() []Action {
	return append([]Action(nil), q.actions...)
}

// Kinds returns the kind of each queued action, in order.
func (q Queue) Kinds() []Kind {
	kinds := make([]Kind, len(q.actions))
	for i, a := range q.actions {
		kinds[i] = a.Kind()
	}
	return kinds
}
