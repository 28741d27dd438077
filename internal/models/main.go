// Package models defines the core data structures shared by the
// FormVault client and server.
package models

// Submission is one user-entered contact record. All fields are free
// text; position in the submission list is the only index, so no ID is
// carried on the wire.
type Submission struct {
	// Name is the contact name entered in the form.
	Name string `json:"name"`
	// Email is the contact email address.
	Email string `json:"email"`
	// Phone is the contact phone number.
	Phone string `json:"phone"`
	// Address is the postal address.
	Address string `json:"address"`
	// Message holds the free-form message body.
	Message string `json:"message"`
}

// Credentials identify a user for the duration of a session. They are
// used only as a lookup key for stored submissions and are never
// validated against any authority.
type Credentials struct {
	// Username is the login name typed at the login prompt.
	Username string
	// Password is the matching password. In the local-storage variant
	// it contributes to the storage key, so a different password means
	// a different (empty) submission list.
	Password string
}
