package ports

// Notifier shows a blocking notice to the user.
type Notifier interface {
	Notify(msg string)
}
