package domain

import "time"

// User is a dashboard account. There is no authentication; the server
// runs against a single seeded user, but the store keyspace is per-user
// so multiple accounts can coexist.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
