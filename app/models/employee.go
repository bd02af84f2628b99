package models

// Employee represents an operator of the terminal. The PIN is a shared
// secret among counter staff, compared for equality at login; it is not a
// security boundary and is deliberately not hashed.
type Employee struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	PIN  string `json:"-"`
}
