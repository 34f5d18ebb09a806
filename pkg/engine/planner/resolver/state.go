package resolver

import "fmt"

// internalPrefix marks registrar-issued column names. User columns never
// carry the prefix, so issued names cannot collide with them.
const internalPrefix = "__"

// State tracks naming decisions made while resolving a single plan tree.
// A State is owned by one top-level resolution and passed to every nested
// resolver call; callers resolving sibling sub-plans concurrently must
// synchronize access to it.
type State struct {
	nextID int
}

// NewState creates an empty State.
func NewState() *State {
	return &State{}
}

// RegisterFieldName issues a column name unique within the plan tree being
// built. The hint is kept in the name for readability only.
func (s *State) RegisterFieldName(hint string) string {
	s.nextID++
	return fmt.Sprintf("%s%s_%d", internalPrefix, hint, s.nextID)
}
