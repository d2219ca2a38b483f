package models

import "strconv"

// Selection is the working set of people chosen to filter results.
// Members are keyed by Person.ID; order is kept for chip display only.
type Selection struct {
	members []Person
}

// NewSelection builds a selection, dropping repeated ids
func NewSelection(people ...Person) Selection {
	var s Selection
	for _, p := range people {
		if !s.Contains(p.ID) {
			s.members = append(s.members, p)
		}
	}
	return s
}

// Contains tests membership by id
func (s Selection) Contains(id int64) bool {
	return s.indexOf(id) >= 0
}

// Member returns the selected record for id
func (s Selection) Member(id int64) (Person, bool) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.members[idx], true
	}
	return Person{}, false
}

// Toggle returns a new selection with the person added if absent or removed if present
func (s Selection) Toggle(p Person) Selection {
	idx := s.indexOf(p.ID)
	if idx < 0 {
		members := make([]Person, len(s.members), len(s.members)+1)
		copy(members, s.members)
		return Selection{members: append(members, p)}
	}

	members := make([]Person, 0, len(s.members)-1)
	members = append(members, s.members[:idx]...)
	members = append(members, s.members[idx+1:]...)
	return Selection{members: members}
}

// People returns the members in chip-display order
func (s Selection) People() []Person {
	out := make([]Person, len(s.members))
	copy(out, s.members)
	return out
}

// IDs returns member ids in display order; never nil
func (s Selection) IDs() []int64 {
	ids := make([]int64, len(s.members))
	for i, p := range s.members {
		ids[i] = p.ID
	}
	return ids
}

func (s Selection) Len() int {
	return len(s.members)
}

// Equal compares two selections as id sets, ignoring order
func (s Selection) Equal(other Selection) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for _, p := range s.members {
		if !other.Contains(p.ID) {
			return false
		}
	}
	return true
}

// Label is the picker button text
func (s Selection) Label() string {
	switch len(s.members) {
	case 0:
		return "Select people..."
	default:
		return strconv.Itoa(len(s.members)) + " people selected"
	}
}

func (s Selection) indexOf(id int64) int {
	for i, p := range s.members {
		if p.ID == id {
			return i
		}
	}
	return -1
}
