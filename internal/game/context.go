package game

import (
	"go.uber.org/zap"

	"github.com/samdwyer/termquest/internal/logging"
)

// Context carries the state shared by every screen through the update
// calls: the quit request and the loggers.
type Context struct {
	quit   bool
	logger *zap.Logger
	debug  *logging.Ring
}

// NewContext creates a context. A nil logger discards output; a nil ring
// leaves the debug panel empty.
func NewContext(logger *zap.Logger, debug *logging.Ring) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debug == nil {
		debug = logging.NewRing(logging.DebugLines)
	}
	return &Context{logger: logger, debug: debug}
}

// Quit asks the update loop to stop after the current iteration.
func (c *Context) Quit() {
	c.quit = true
}

// ShouldQuit reports whether Quit was called.
func (c *Context) ShouldQuit() bool {
	return c.quit
}

// Logger returns the session logger.
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// DebugLines returns the messages shown in the debug panel.
func (c *Context) DebugLines() []string {
	return c.debug.Lines()
}
