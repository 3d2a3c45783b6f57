package usecase

import (
	"mcw-copilot/internal/metrics"
	"mcw-copilot/internal/relay"
	"mcw-copilot/internal/router"
	"mcw-copilot/pkg/brain"
	pkgLog "mcw-copilot/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	router  router.Router
	brain   brain.IBrain
	metrics metrics.Recorder
}

var _ relay.UseCase = (*implUseCase)(nil)

// New creates a new relay UseCase instance. A nil recorder disables metrics.
func New(
	l pkgLog.Logger,
	r router.Router,
	b brain.IBrain,
	rec metrics.Recorder,
) relay.UseCase {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &implUseCase{
		l:       l,
		router:  r,
		brain:   b,
		metrics: rec,
	}
}
