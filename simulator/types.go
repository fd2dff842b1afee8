package simulator

import (
	"github.com/katalvlaran/orca2d/agent"
	"github.com/katalvlaran/orca2d/kdtree"
	"github.com/katalvlaran/orca2d/obstacle"
	"github.com/katalvlaran/orca2d/vec2"
)

// NoAgent is the sentinel returned by AddAgent (no defaults set yet) and by
// AddObstacle (fewer than two vertices supplied): contract violations are
// reported as sentinel values on this hot path rather than as errors. It
// is never a valid agent or vertex id.
const NoAgent = -1

// defaultTimeStep is the tick length used until SetTimeStep or
// WithTimeStep overrides it.
const defaultTimeStep = 0.1

// Simulator owns every agent, every obstacle polygon, the spatial indices
// that serve them, the tick length, and global time. It is an ordinary
// value-owning struct: no process-wide state is involved, so multiple
// independent simulations can coexist in one process.
type Simulator struct {
	agents     []*agent.Agent
	obstacles  *obstacle.Store
	tree       *kdtree.Tree
	timeStep   float64
	globalTime float64

	hasDefaults     bool
	defaults        agent.Params
	defaultVelocity vec2.Vec2

	workers int
}

// Option configures a Simulator at construction.
type Option func(*Simulator)

// WithTimeStep overrides the default tick length (0.1).
func WithTimeStep(dt float64) Option {
	return func(s *Simulator) { s.timeStep = dt }
}

// WithWorkerPool switches Step's per-agent neighbor+ORCA+LP phase from a
// sequential loop to a bounded pool of n goroutines. n <= 1 leaves the
// phase sequential.
func WithWorkerPool(n int) Option {
	return func(s *Simulator) { s.workers = n }
}

// New returns an empty Simulator with no agents, no obstacles, and no
// default agent template. Call SetAgentDefaults before the first AddAgent.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		obstacles: obstacle.NewStore(),
		tree:      kdtree.New(),
		timeStep:  defaultTimeStep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
