package i

// Logger writes leveled log messages.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
