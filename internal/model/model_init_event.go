package model

import "github.com/trknhr/kanarank/internal/logger"

type ModelStatus int

const (
	ModelUnknown ModelStatus = iota
	ModelReady
	ModelError
)

type ModelInitEvent struct {
	Name   string
	Status ModelStatus
	Err    error
}

// DrainAndLogEvents logs every event until the channel is closed.
func DrainAndLogEvents(ch <-chan ModelInitEvent) {
	for ev := range ch {
		switch ev.Status {
		case ModelReady:
			logger.Debug("[%s] ready", ev.Name)
		case ModelError:
			logger.WarnOnce("[%s] unavailable: %v", ev.Name, ev.Err)
		}
	}
}

// WaitReady blocks until the channel is closed and returns the first error reported.
func WaitReady(ch <-chan ModelInitEvent) error {
	var firstErr error
	for ev := range ch {
		if ev.Status == ModelError && firstErr == nil {
			firstErr = ev.Err
		}
	}
	return firstErr
}
