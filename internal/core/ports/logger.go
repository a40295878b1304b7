package ports

// LoggerPort is the logging surface the core depends on.
// With returns a logger whose entries are tagged with the given component.
type LoggerPort interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	With(component string) LoggerPort
	Close()
}
