// Package gdext glues Go integration tests to a host engine. The Session is
// the runner-side half of the contract: it owns the diagnostic console
// and hands each test function a fresh assertion context, restoring the
// engine's error-message toggle once the function returns.
package gdext

import (
	"github.com/patataofcourse/gdext/itest"
	"github.com/patataofcourse/gdext/itest/diag"
	"github.com/patataofcourse/gdext/logger"
)

type Session struct {
	console *diag.Console
	logger  logger.Logger
}

type Options struct {
	// Console for test diagnostics. Defaults to diag.Default.
	Console *diag.Console

	Logger logger.Logger
}

func NewSession(opts Options) *Session {
	console := opts.Console
	if console == nil {
		console = diag.Default
	}
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	return &Session{
		console: console,
		logger:  log,
	}
}

// NewContext returns a fresh assertion context for a single test
// invocation. Contexts are not reused across tests.
func (s *Session) NewContext() *itest.Context {
	return itest.NewContext(itest.Options{Console: s.console})
}

// Run invokes one test function against a fresh context and reports
// whether it passed. The error-message toggle is put back to its prior
// state when the function returns, whatever the test did to it. Run is
// synchronous; sequencing multiple tests is the caller's business.
func (s *Session) Run(name string, fn func(*itest.Context)) bool {
	ctx := s.NewContext()

	restore := diag.Preserve(s.console)
	defer restore()

	s.logger.Debug("running test", "name", name)
	fn(ctx)

	if ctx.Failed() {
		s.logger.Error("test failed", "name", name)
		return false
	}
	s.logger.Debug("test passed", "name", name)
	return true
}
