package placement

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/techradar/pkg/geometry"
	"github.com/matzehuels/techradar/pkg/radar"
)

// Observer is notified as blips are placed or skipped.
type Observer interface {
	OnBlipPlaced(b radar.Blip, c geometry.Coordinate)
	OnBlipSkipped(b radar.Blip, reason SkipReason)
}

// ObserverFuncs adapts plain functions to [Observer]. Nil fields are ignored.
type ObserverFuncs struct {
	Placed  func(radar.Blip, geometry.Coordinate)
	Skipped func(radar.Blip, SkipReason)
}

func (f ObserverFuncs) OnBlipPlaced(b radar.Blip, c geometry.Coordinate) {
	if f.Placed != nil {
		f.Placed(b, c)
	}
}

func (f ObserverFuncs) OnBlipSkipped(b radar.Blip, reason SkipReason) {
	if f.Skipped != nil {
		f.Skipped(b, reason)
	}
}

// NoopObserver ignores all notifications.
type NoopObserver struct{}

func (NoopObserver) OnBlipPlaced(radar.Blip, geometry.Coordinate) {}
func (NoopObserver) OnBlipSkipped(radar.Blip, SkipReason)         {}

// LogObserver logs placements at debug level and skips at warn level.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) OnBlipPlaced(b radar.Blip, c geometry.Coordinate) {
	if o.Logger == nil {
		return
	}
	o.Logger.Debug("blip placed", "blip", b.Label(), "segment", b.Segment, "ring", b.Ring, "x", c.X, "y", c.Y)
}

func (o LogObserver) OnBlipSkipped(b radar.Blip, reason SkipReason) {
	if o.Logger == nil {
		return
	}
	o.Logger.Warn("blip not placed", "blip", b.Label(), "reason", reason.String())
}

type multiObserver []Observer

// Observers returns an Observer that notifies each of obs in order.
func Observers(obs ...Observer) Observer {
	return multiObserver(obs)
}

func (m multiObserver) OnBlipPlaced(b radar.Blip, c geometry.Coordinate) {
	for _, o := range m {
		o.OnBlipPlaced(b, c)
	}
}

func (m multiObserver) OnBlipSkipped(b radar.Blip, reason SkipReason) {
	for _, o := range m {
		o.OnBlipSkipped(b, reason)
	}
}
