package store

// DateKey builds the composite "{userId}-{date}" key that per-day
// singleton kinds are stored under. Dates are opaque YYYY-MM-DD tokens
// supplied by the caller; they are compared, never parsed.
func DateKey(userID, date string) string {
	return userID + "-" + date
}

type owned interface {
	Owner() string
}

type dayScoped interface {
	owned
	Day() string
}

// ByOwner matches records belonging to userID.
func ByOwner[T owned](userID string) func(T) bool {
	return func(rec T) bool {
		return rec.Owner() == userID
	}
}

// OnDay matches records belonging to userID on the given date.
func OnDay[T dayScoped](userID, date string) func(T) bool {
	return func(rec T) bool {
		return rec.Owner() == userID && rec.Day() == date
	}
}
