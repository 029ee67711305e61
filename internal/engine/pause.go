package engine

import (
	"context"
	"errors"
)

// ErrPauseUnsupported is returned when a player exposes no pause capability
var ErrPauseUnsupported = errors.New("player does not support pausing")

// Pause pauses p through its pause capabilities, in priority order
func Pause(ctx context.Context, p Player) error {
	return setPaused(ctx, p, true)
}

// Resume resumes p through its pause capabilities, in priority order
func Resume(ctx context.Context, p Player) error {
	return setPaused(ctx, p, false)
}

// setPaused tries Pauser then PausedSetter; the first success wins
func setPaused(ctx context.Context, p Player, paused bool) error {
	if p == nil {
		return ErrPauseUnsupported
	}

	var errs []error

	if pauser, ok := p.(Pauser); ok {
		var err error
		if paused {
			err = pauser.Pause(ctx)
		} else {
			err = pauser.Resume(ctx)
		}
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}

	if setter, ok := p.(PausedSetter); ok {
		err := setter.SetPaused(ctx, paused)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return ErrPauseUnsupported
	}
	return errors.Join(errs...)
}
