package testutil

// Env is a static logger.Environment. Tests flip its fields between calls.
type Env struct {
	Debug                 bool
	ContinuousIntegration bool
	Deprecations          bool
	InAjax                bool
}

// DebugEnv returns an environment with only debug mode on.
func DebugEnv() *Env {
	return &Env{Debug: true}
}

// DebugMode implements logger.Environment.
func (e *Env) DebugMode() bool { return e.Debug }

// CI implements logger.Environment.
func (e *Env) CI() bool { return e.ContinuousIntegration }

// TestingDeprecations implements logger.Environment.
func (e *Env) TestingDeprecations() bool { return e.Deprecations }

// Ajax implements logger.Environment.
func (e *Env) Ajax() bool { return e.InAjax }
