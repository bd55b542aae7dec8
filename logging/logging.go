package logging

import (
	"github.com/rs/zerolog"
)

// componentKey is the field naming the component that emitted an entry.
const componentKey = "component"

// Nop returns a logger that discards every entry.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// ForTest returns a debug level logger that writes through t.Log, tagged with
// the given component name.
func ForTest(t zerolog.TestingLog, component string) *zerolog.Logger {
	l := zerolog.New(zerolog.NewTestWriter(t)).
		Level(zerolog.DebugLevel).
		With().
		Str(componentKey, component).
		Logger()
	return &l
}

// Or returns l, or a Nop logger when l is nil.
func Or(l *zerolog.Logger) *zerolog.Logger {
	if l == nil {
		return Nop()
	}
	return l
}
