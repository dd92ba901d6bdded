package r2000

// SetPhaseMode toggles the host's phase-mode side channel (§4.2):
// whether trailing inventory-sighting bytes are decoded as phase angle
// or as RSSI + frequency. This tracks the reader's own phase-mode
// configuration rather than issuing a wire command itself — callers
// set it to match whatever enabled phase reporting on the reader side
// (a vendor-specific RF link profile or module function, outside this
// driver's command set).
func (r *Reader) SetPhaseMode(enabled bool) {
	r.mu.Lock()
	r.phaseMode = enabled
	r.mu.Unlock()
}

// PhaseMode reports the currently tracked phase-mode state.
func (r *Reader) PhaseMode() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phaseMode
}
