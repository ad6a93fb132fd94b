package app

const (
	// PhaseStep is the per-tick increment of the animation phase, in radians.
	PhaseStep = 0.01

	// TwoPi is the wrap bound of the phase.
	TwoPi = 3.14159265 * 2
)

// Phase is the animation parameter t, cyclic over [0, 2π).
//
// t accumulates in float64 so the wrap lands on the tick predicted by
// ⌈(2π − t₀)/Δ⌉; it is narrowed to float32 for the trigonometry.
type Phase struct {
	t float64
}

// NewPhase returns a phase starting at t.
func NewPhase(t float64) Phase { return Phase{t: t} }

// T returns the current value.
func (p *Phase) T() float64 { return p.t }

// Advance adds PhaseStep and resets to 0 once the value exceeds TwoPi.
// The comparison is strict: a value equal to TwoPi survives until the next
// tick. It reports whether the phase wrapped.
func (p *Phase) Advance() (wrapped bool) {
	p.t += PhaseStep
	if p.t > TwoPi {
		p.t = 0
		return true
	}
	return false
}
