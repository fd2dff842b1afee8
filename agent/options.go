package agent

// Option configures a Params via DefaultParams.
type Option func(*Params)

// WithRadius sets the agent disc radius. Must be positive; see Params.Radius.
func WithRadius(radius float64) Option {
	return func(p *Params) { p.Radius = radius }
}

// WithMaxSpeed sets the agent's maximum speed.
func WithMaxSpeed(maxSpeed float64) Option {
	return func(p *Params) { p.MaxSpeed = maxSpeed }
}

// WithNeighborDist sets the neighbor search radius.
func WithNeighborDist(dist float64) Option {
	return func(p *Params) { p.NeighborDist = dist }
}

// WithMaxNeighbors bounds the agent-neighbor list size.
func WithMaxNeighbors(n int) Option {
	return func(p *Params) { p.MaxNeighbors = n }
}

// WithTimeHorizon sets the agent-agent ORCA look-ahead window.
func WithTimeHorizon(tau float64) Option {
	return func(p *Params) { p.TimeHorizon = tau }
}

// WithTimeHorizonObst sets the agent-obstacle ORCA look-ahead window.
func WithTimeHorizonObst(tau float64) Option {
	return func(p *Params) { p.TimeHorizonObst = tau }
}

// DefaultParams returns a Params with the given options applied over zero
// values. Callers building a simulator default template (see package
// simulator's SetAgentDefaults) should supply every field; DefaultParams
// performs no validation itself, so a field left unset stays zero.
func DefaultParams(opts ...Option) Params {
	var p Params
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
