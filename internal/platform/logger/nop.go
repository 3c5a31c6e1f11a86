package logger

// nopLogger discards every entry. The CLI starts with it until LOGGER_*
// settings are loaded.
type nopLogger struct{}

func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Sync() error            { return nil }

func (n nopLogger) With(...Field) Logger { return n }
