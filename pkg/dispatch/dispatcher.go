// Package dispatch executes an action queue against a resolved session.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/hyprdispatch/errors"
	"github.com/grovetools/hyprdispatch/pkg/action"
	"github.com/grovetools/hyprdispatch/pkg/session"
	"github.com/sirupsen/logrus"
)

// NoActionsNotice is printed when the queue is empty.
const NoActionsNotice = "No actions requested."

// Report summarizes a run.
type Report struct {
	// Executed counts actions that completed, including local ones.
	Executed int
	// Invocations counts control tool processes started.
	Invocations int
}

// Dispatcher runs actions one at a time, in queue order, stopping at the
// first failure. Nothing already executed is undone.
type Dispatcher struct {
	runner   Runner
	reporter Reporter
	logger   *logrus.Entry
}

// New creates a Dispatcher.
func New(runner Runner, reporter Reporter, logger *logrus.Entry) *Dispatcher {
	return &Dispatcher{
		runner:   runner,
		reporter: reporter,
		logger:   logger,
	}
}

// step is the plan for one action. Local steps make no external call.
type step struct {
	message    string
	dispatcher string
	arg        string
	local      bool
}

// plan maps an action to its step. Every action kind must have a case.
func plan(a action.Action) (step, error) {
	switch a := a.(type) {
	case action.Workspace:
		return step{message: "Switching to workspace " + a.Target, dispatcher: "workspace", arg: a.Target}, nil
	case action.Fullscreen:
		return step{message: "Setting fullscreen: " + string(a.Mode), dispatcher: "fullscreen", arg: string(a.Mode)}, nil
	case action.Monitor:
		return step{message: "Focusing monitor " + a.Target, dispatcher: "focusmonitor", arg: a.Target}, nil
	case action.MoveWindow:
		return step{message: "Moving window to workspace " + a.Target, dispatcher: "movetoworkspace", arg: a.Target}, nil
	case action.PrintSignature:
		return step{local: true}, nil
	}
	return step{}, errors.New(errors.ErrCodeInternal, fmt.Sprintf("no dispatch plan for action %T", a))
}

// Run executes q for sess. An empty queue reports the session and a
// notice and succeeds without invoking anything.
func (d *Dispatcher) Run(ctx context.Context, sess *session.Session, q action.Queue) (Report, error) {
	var report Report

	if q.Empty() {
		d.reporter.Result(sess.EnvLine())
		d.reporter.Notice(NoActionsNotice)
		return report, nil
	}

	for i, a := range q.Actions() {
		log := d.logger.WithField("index", i).WithField("action", a.Kind())

		if err := a.Validate(); err != nil {
			log.WithError(err).Debug("Validation failed")
			return report, err
		}

		s, err := plan(a)
		if err != nil {
			return report, err
		}

		if s.local {
			d.reporter.Result(sess.EnvLine())
			report.Executed++
			continue
		}

		d.reporter.Progress(s.message)
		if err := d.invoke(ctx, s); err != nil {
			log.WithError(err).Debug("Action failed")
			report.Invocations++
			return report, err
		}
		report.Invocations++
		report.Executed++
		log.Debug("Action completed")
	}

	d.logger.WithField("executed", report.Executed).
		WithField("invocations", report.Invocations).
		Debug("Dispatch finished")
	return report, nil
}

func (d *Dispatcher) invoke(ctx context.Context, s step) error {
	args := []string{s.dispatcher, s.arg}
	cmdline := "dispatch " + strings.Join(args, " ")

	res, err := d.runner.Run(ctx, "dispatch", args...)
	if err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.CommandFailed(cmdline, err)
	}
	if !res.Success() {
		return errors.ExternalInvocationFailed(cmdline, res.ExitCode, res.Stderr)
	}
	return nil
}
