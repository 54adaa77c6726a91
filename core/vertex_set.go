package core

// VertexSet is a duplicate-free collection of handles naming the part of a
// Graph under analysis. Membership is O(1); IDs() preserves insertion order.
//
// A VertexSet does not own vertices and carries no coordinate data.
// The zero value is not usable; use NewVertexSet.
type VertexSet struct {
	members map[VertexID]struct{}
	order   []VertexID
}

// NewVertexSet returns a set holding ids, ignoring duplicates.
func NewVertexSet(ids ...VertexID) *VertexSet {
	s := &VertexSet{
		members: make(map[VertexID]struct{}, len(ids)),
		order:   make([]VertexID, 0, len(ids)),
	}
	for _, id := range ids {
		s.Add(id)
	}

	return s
}

// Add inserts id and reports whether it was newly added.
func (s *VertexSet) Add(id VertexID) bool {
	if _, ok := s.members[id]; ok {
		return false
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)

	return true
}

// Has reports membership. A nil set has no members.
func (s *VertexSet) Has(id VertexID) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[id]

	return ok
}

// Len returns the number of members.
func (s *VertexSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// IDs returns the members in insertion order.
func (s *VertexSet) IDs() []VertexID {
	if s == nil {
		return nil
	}
	out := make([]VertexID, len(s.order))
	copy(out, s.order)

	return out
}
