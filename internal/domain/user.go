package domain

// User represents one of the two fixed profiles.
// Users are not persisted as rows; the selection lives in the local
// preference store and every other entity is scoped to the selected id.
type User struct {
	ID   int64
	Name string
}

// Users returns the static profile table.
func Users() []User {
	return []User{
		{ID: 1, Name: "Kevin"},
		{ID: 2, Name: "Fanny"},
	}
}

// UserByID resolves an id against the static profile table.
// Returns nil if the id does not match a known profile.
func UserByID(id int64) *User {
	for _, u := range Users() {
		if u.ID == id {
			user := u
			return &user
		}
	}
	return nil
}
