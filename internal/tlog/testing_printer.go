package tlog

// TestingPrinter the subset of *testing.T the helpers need.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}
