// Package pty spawns and controls pseudo-terminals for the Terminal widget.
// The Runner interface keeps the creack/pty dependency behind a seam so tests
// can substitute an in-memory implementation.
package pty

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns a command in a PTY and resizes it.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// Creack implements Runner using github.com/creack/pty.
type Creack struct{}

var _ Runner = (*Creack)(nil)

// Start spawns cmd in a PTY with the given size. Cancellation is handled by
// the caller closing the returned ReadWriteCloser.
func (Creack) Start(_ context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	ws := &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
	return pty.StartWithSize(cmd, ws)
}

// Resize resizes the PTY. The rwc must be the *os.File returned by Start;
// other types are a no-op.
func (Creack) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
