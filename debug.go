package picket

import "go.uber.org/zap"

// eventLogger wraps the optional zap logger so the hot path is a single nil
// check when tracing is off.
type eventLogger struct {
	l *zap.Logger
}

// SetLogger enables tracing of every emitted event and every rejected hit at
// Debug level. Pass nil to disable (the default).
func (p *Picker) SetLogger(l *zap.Logger) {
	p.logger.l = l
}

func (p *Picker) logEvent(ev Event) {
	if p.logger.l == nil {
		return
	}
	fields := []zap.Field{
		zap.Stringer("kind", ev.Kind),
		zap.Stringer("pointer", ev.Pointer),
		zap.Stringer("target", ev.Target),
		zap.Float64("x", ev.Position.X),
		zap.Float64("y", ev.Position.Y),
	}
	switch ev.Kind {
	case EventPress, EventRelease, EventClick, EventDragStart, EventDrag, EventDragEnd, EventDrop:
		fields = append(fields, zap.Stringer("button", ev.Button))
	}
	if ev.Kind == EventDrag {
		fields = append(fields, zap.Float64("dx", ev.Delta.X), zap.Float64("dy", ev.Delta.Y))
	}
	if ev.Kind == EventDrop {
		fields = append(fields, zap.Stringer("dropped", ev.Dropped))
	}
	p.logger.l.Debug("picket event", fields...)
}

func (p *Picker) logRejectedHit(id PointerID, hit Hit, reason string) {
	if p.logger.l == nil {
		return
	}
	p.logger.l.Debug("picket hit rejected",
		zap.Stringer("pointer", id),
		zap.Stringer("entity", hit.Entity),
		zap.Float32("depth", hit.Depth),
		zap.String("reason", reason),
	)
}
