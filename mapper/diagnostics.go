package mapper

// Diagnostics receives validation failures with enough context to locate
// the offending source declaration. Implementations must not panic; a
// report is always followed by a per-method skip, never a process abort.
type Diagnostics interface {
	Report(location string, format string, args ...any)
}

// nopDiagnostics swallows reports. Used when callers pass a nil sink.
type nopDiagnostics struct{}

func (nopDiagnostics) Report(string, string, ...any) {}

// NopDiagnostics returns a sink that discards every report.
func NopDiagnostics() Diagnostics {
	return nopDiagnostics{}
}
