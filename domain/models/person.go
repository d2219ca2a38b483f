package models

import "fmt"

// UnknownPersonName is shown for people ids that no longer resolve in the directory
const UnknownPersonName = "Unknown person"

// Person is a backend-owned identity. The dashboard only keeps a read-mostly cache of it.
type Person struct {
	ID           int64  `json:"people_id"`
	Name         string `json:"name"`
	PhotoCount   int    `json:"photo_count"`
	FaceImageURL string `json:"face_image_url,omitempty"`

	// Unknown marks a placeholder produced for a dangling id
	Unknown bool `json:"unknown,omitempty"`
}

// UnknownPerson returns the placeholder rendered for an id missing from the directory
func UnknownPerson(id int64) Person {
	return Person{
		ID:      id,
		Name:    UnknownPersonName,
		Unknown: true,
	}
}

// Initial returns the first letter of the name, used as avatar fallback
func (p Person) Initial() string {
	for _, r := range p.Name {
		return string(r)
	}
	return "?"
}

func (p Person) String() string {
	return fmt.Sprintf("%s (#%d)", p.Name, p.ID)
}
