package log

// nullLogger discards everything. Useful for tests that want to assert on
// fatal diagnostics without spamming stderr.
type nullLogger struct{}

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}

// NewNull returns a Logger that does nothing.
func NewNull() Logger {
	return nullLogger{}
}
