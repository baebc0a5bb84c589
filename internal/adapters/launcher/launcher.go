// Package launcher opens app windows as separate shell processes. Each
// native webview owns its process's main thread, so a fresh process per
// window keeps windows independent of each other.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/brianly1003/pwashell/internal/domain/ports"
)

// Launcher implements ports.WindowFactory.
type Launcher struct {
	executable string
	baseArgs   []string
	command    func(name string, args ...string) *exec.Cmd
}

// NewLauncher creates a launcher that runs executable with baseArgs followed
// by the per-window flags.
func NewLauncher(executable string, baseArgs []string) *Launcher {
	return &Launcher{
		executable: executable,
		baseArgs:   append([]string(nil), baseArgs...),
		command:    exec.Command,
	}
}

// Args returns the full argument list used for spec.
func (l *Launcher) Args(spec ports.WindowSpec) []string {
	args := append([]string(nil), l.baseArgs...)
	args = append(args, "--url", spec.URL, "--window-id", spec.ID)
	if spec.ParentID != "" {
		args = append(args, "--parent-id", spec.ParentID)
	}
	return args
}

// NewWindow starts a new shell process for spec.
func (l *Launcher) NewWindow(ctx context.Context, spec ports.WindowSpec) (ports.Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := l.command(l.executable, l.Args(spec)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start window process: %w", err)
	}

	p := &process{
		id:   spec.ID,
		cmd:  cmd,
		done: make(chan struct{}),
	}
	go p.wait()

	log.Debug().
		Str("window_id", spec.ID).
		Int("pid", cmd.Process.Pid).
		Msg("window process started")

	return p, nil
}

// process is a window running in a child process.
type process struct {
	id   string
	cmd  *exec.Cmd
	done chan struct{}

	mu  sync.Mutex
	err error
}

func (p *process) ID() string { return p.id }

// Close kills the window process if it is still running.
func (p *process) Close() error {
	select {
	case <-p.done:
		return nil
	default:
	}
	if err := p.cmd.Process.Kill(); err != nil {
		return err
	}
	<-p.done
	return nil
}

func (p *process) wait() {
	err := p.cmd.Wait()

	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
	close(p.done)

	event := log.Debug()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.Str("window_id", p.id).Msg("window process exited")
}
