package ports

// Notifier is the fire-and-forget user-facing message channel. Only the
// presentation layer drives it; services report outcomes through errors.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}
