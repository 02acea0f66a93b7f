package domain

// Session is a point-in-time view of who is currently signed in.
// Loading is true only between process start and the first restore attempt.
type Session struct {
	Authenticated bool
	Account       *Account
	Loading       bool
}
