package commands

import (
	"solar_cli/pkg/assistant"
	"solar_cli/pkg/roi"
)

// Context contains all the context needed for command execution
type Context struct {
	Session     *assistant.Session
	ROIDefaults roi.Inputs
	Args        []string
}

// NewContext creates a new command context
func NewContext(sess *assistant.Session, defaults roi.Inputs) *Context {
	return &Context{
		Session:     sess,
		ROIDefaults: defaults,
	}
}

// Arg returns the i-th argument or "".
func (c *Context) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
