// Package process runs a single external solver command with a bounded
// duration, capturing its output.
package process

import (
	"bytes"
	"fmt"
	"os/exec"
	"time"

	"github.com/matwu/road-void-evolution-simulator/config"
)

var log = config.NamedLogger("process")

// Result captures one finished command.
type Result struct {
	StdOut string
	StdErr string
	Err    error
}

// Run starts cmd and waits for it to finish, killing it when maxDuration
// expires. The captured stdout/stderr are returned even on failure so the
// caller can surface solver diagnostics.
func Run(cmd *exec.Cmd, maxDuration time.Duration) Result {
	stdoutBuff := &bytes.Buffer{}
	stderrBuff := &bytes.Buffer{}
	cmd.Stdout = stdoutBuff
	cmd.Stderr = stderrBuff

	log.Debugf("running %s (timeout %s)", cmd.Path, maxDuration)

	if err := cmd.Start(); err != nil {
		return Result{Err: fmt.Errorf("start %s: %w", cmd.Path, err)}
	}

	processFinished := make(chan error, 1)
	go func() {
		processFinished <- cmd.Wait()
	}()

	var err error
	select {
	case err = <-processFinished:
	case <-time.After(maxDuration):
		err = fmt.Errorf("%s command timeout expired", cmd.Path)
		_ = cmd.Process.Kill()
		<-processFinished
	}

	if err != nil {
		err = fmt.Errorf("run %s: %w", cmd.Path, err)
	}

	return Result{
		StdOut: stdoutBuff.String(),
		StdErr: stderrBuff.String(),
		Err:    err,
	}
}
