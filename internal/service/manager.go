package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/egorlepa/ocpanel/internal/platform"
)

// Action is a supervisorctl verb.
type Action string

const (
	Start   Action = "start"
	Stop    Action = "stop"
	Restart Action = "restart"
)

// exitAlready is what supervisorctl returns for "start" on a running program.
const exitAlready = 7

// ParseAction validates a user-supplied action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case Start, Stop, Restart:
		return a, nil
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// Outcome is the user-facing result of a control action.
type Outcome struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Supervisor controls one program through supervisorctl.
type Supervisor struct {
	Runner      platform.Runner
	Binary      string // e.g., "supervisorctl"
	Program     string // e.g., "openconnect-vpn"
	StartSettle time.Duration
	StopSettle  time.Duration
	Logger      *slog.Logger

	// Sleep waits out the settle delay. Tests replace it.
	Sleep func(context.Context, time.Duration)

	group singleflight.Group
}

// NewSupervisor creates a controller for program.
func NewSupervisor(runner platform.Runner, binary, program string, startSettle, stopSettle time.Duration, logger *slog.Logger) *Supervisor {
	return &Supervisor{
		Runner:      runner,
		Binary:      binary,
		Program:     program,
		StartSettle: startSettle,
		StopSettle:  stopSettle,
		Logger:      logger,
		Sleep:       sleepCtx,
	}
}

// Start starts the program.
func (s *Supervisor) Start(ctx context.Context) Outcome { return s.Control(ctx, Start) }

// Stop stops the program.
func (s *Supervisor) Stop(ctx context.Context) Outcome { return s.Control(ctx, Stop) }

// Restart restarts the program.
func (s *Supervisor) Restart(ctx context.Context) Outcome { return s.Control(ctx, Restart) }

// Control runs `<binary> <action> <program>` and waits for the program to
// settle on success. Concurrent calls with the same action share one
// invocation, which outlives any single caller's cancellation; ctx only bounds
// this caller's settle wait.
func (s *Supervisor) Control(ctx context.Context, action Action) Outcome {
	shared := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(string(action), func() (any, error) {
		return s.invoke(shared, action), nil
	})
	r := v.(invocation)
	if r.settle {
		if d := s.settle(action); d > 0 {
			s.Sleep(ctx, d)
		}
	}
	return r.outcome
}

type invocation struct {
	outcome Outcome
	settle  bool
}

func (s *Supervisor) invoke(ctx context.Context, action Action) invocation {
	res, err := s.Runner.Run(ctx, s.Binary, string(action), s.Program)
	if err != nil {
		s.Logger.Error("supervisor invocation failed", "action", action, "program", s.Program, "error", err)
		return invocation{outcome: Outcome{Error: err.Error()}}
	}

	if res.ExitCode != 0 {
		msg := failureMessage(res)
		if res.ExitCode == exitAlready && strings.Contains(strings.ToLower(msg), "already") {
			s.Logger.Info("program already in requested state", "action", action, "program", s.Program)
			return invocation{outcome: Outcome{Success: true, Message: "VPN is already running"}}
		}
		s.Logger.Warn("supervisor action failed", "action", action, "program", s.Program, "exit_code", res.ExitCode, "error", msg)
		return invocation{outcome: Outcome{Error: msg}}
	}

	s.Logger.Info("supervisor action accepted", "action", action, "program", s.Program)
	return invocation{outcome: Outcome{Success: true, Message: successMessage(action)}, settle: true}
}

func (s *Supervisor) settle(action Action) time.Duration {
	if action == Stop {
		return s.StopSettle
	}
	return s.StartSettle
}

func successMessage(action Action) string {
	switch action {
	case Start:
		return "VPN connection starting"
	case Stop:
		return "VPN connection stopped"
	default:
		return "VPN reconnecting"
	}
}

// failureMessage prefers stderr, then stdout, then the bare exit code.
func failureMessage(res platform.Result) string {
	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(res.Stdout); msg != "" {
		return msg
	}
	return fmt.Sprintf("Exit code: %d", res.ExitCode)
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Status returns supervisorctl's one-line status for the program and whether
// it reports RUNNING.
func (s *Supervisor) Status(ctx context.Context) (string, bool, error) {
	res, err := s.Runner.Run(ctx, s.Binary, "status", s.Program)
	if err != nil {
		return "", false, err
	}
	line := strings.TrimSpace(res.Stdout)
	if line == "" {
		line = failureMessage(res)
	}
	return line, strings.Contains(line, "RUNNING"), nil
}
