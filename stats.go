package r2000

import "sync/atomic"

// Stats accumulates counters for the best-effort recovery paths in §7:
// nothing here changes wire behavior, it is purely for observability,
// in the spirit of the teacher's audio_stats.go running counters.
type Stats struct {
	FramingErrors    atomic.Uint64 // bad header/length/LRC, dropped
	AddressMismatch  atomic.Uint64 // packet address != configured target
	UnknownCommand   atomic.Uint64 // command code not in proto.Descriptors
	IntegrityWarning atomic.Uint64 // C1G2 sighting whose PC+EPC CRC did not validate
	Resyncs          atomic.Uint64 // pending entries popped without matching
	Timeouts         atomic.Uint64 // commands that hit their deadline
	TagEvents        atomic.Uint64 // C1G2 sightings delivered to EventSink
	SixBEvents       atomic.Uint64 // 6B sightings delivered to EventSink
}

// Snapshot is a point-in-time copy of Stats, safe to read without
// racing the live counters.
type Snapshot struct {
	FramingErrors    uint64
	AddressMismatch  uint64
	UnknownCommand   uint64
	IntegrityWarning uint64
	Resyncs          uint64
	Timeouts         uint64
	TagEvents        uint64
	SixBEvents       uint64
}

func (s *Stats) snapshot() Snapshot {
	return Snapshot{
		FramingErrors:    s.FramingErrors.Load(),
		AddressMismatch:  s.AddressMismatch.Load(),
		UnknownCommand:   s.UnknownCommand.Load(),
		IntegrityWarning: s.IntegrityWarning.Load(),
		Resyncs:          s.Resyncs.Load(),
		Timeouts:         s.Timeouts.Load(),
		TagEvents:        s.TagEvents.Load(),
		SixBEvents:       s.SixBEvents.Load(),
	}
}
