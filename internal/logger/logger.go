package logger

// Logger is the structured logger shared by the scene, its systems and the
// host adapters. Frame-rate logging goes through Debug so sampling can thin it.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field is a single key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field inline.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Component tags every entry of the returned logger with the owning component.
func Component(l Logger, name string) Logger {
	if l == nil {
		l = Nop()
	}
	return l.With(Field{Key: "component", Value: name})
}
