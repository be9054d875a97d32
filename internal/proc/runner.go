// internal/proc/runner.go
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Runner abstracts the two native tools the panel drives.
// The query layer depends on this contract only.
type Runner interface {
	// Run invokes the device-configuration tool and returns its stdout.
	Run(args ...string) (string, error)

	// RunInDir is Run with an explicit working directory. Session
	// downloads land wherever the tool runs from.
	RunInDir(dir string, args ...string) (string, error)

	// RunViewer invokes the raw-session viewer on a file that must
	// already sit next to the viewer binary. Output is stdout and
	// stderr combined: the viewer splits diagnostics across both.
	RunViewer(flag, fileName string) (string, error)
}

// DefaultTimeout bounds every tool invocation when the config does
// not say otherwise.
const DefaultTimeout = 10 * time.Second

// CommandRunner shells out to the real executables.
// Every invocation is a scoped child process: bounded wait, killed on
// timeout. The config tool is interactive and blocks on a "press any
// key" prompt, so stdin always receives a single newline.
type CommandRunner struct {
	ConfigTool string
	ViewerTool string
	Timeout    time.Duration
}

func New(configTool, viewerTool string, timeout time.Duration) *CommandRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CommandRunner{
		ConfigTool: configTool,
		ViewerTool: viewerTool,
		Timeout:    timeout,
	}
}

func (r *CommandRunner) Run(args ...string) (string, error) {
	return r.RunInDir("", args...)
}

func (r *CommandRunner) RunInDir(dir string, args ...string) (string, error) {
	if _, err := os.Stat(r.ConfigTool); err != nil {
		return "", fmt.Errorf("proc: config tool not found at %q", r.ConfigTool)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.ConfigTool, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader("\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return "", errors.New("proc: command timed out; the device may be unresponsive")
	}

	// Nonzero exit with output still counts: the tool reports partial
	// diagnostics alongside a failing status.
	if err != nil && stdout.Len() == 0 {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = fmt.Sprintf("proc: command failed with no output: %v", err)
		}
		return "", errors.New(msg)
	}

	return stdout.String(), nil
}

func (r *CommandRunner) RunViewer(flag, fileName string) (string, error) {
	if _, err := os.Stat(r.ViewerTool); err != nil {
		return "", fmt.Errorf("proc: viewer not found at %q", r.ViewerTool)
	}

	dir := filepath.Dir(r.ViewerTool)
	if _, err := os.Stat(filepath.Join(dir, fileName)); err != nil {
		return "", fmt.Errorf("proc: raw file not found at %q", filepath.Join(dir, fileName))
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.ViewerTool, flag, fileName)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return "", errors.New("proc: viewer timed out")
	}

	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = fmt.Sprintf("proc: viewer failed with no output: %v", err)
		}
		return "", errors.New(msg)
	}

	return string(out), nil
}
