package oscillator

import (
	"math"

	"github.com/san-kum/shmsim/internal/series"
)

const (
	DefaultSteps     = 10000
	DefaultDuration  = 10.0
	DefaultDriveFreq = 0.1
)

// Options holds the optional construction parameters.
type Options struct {
	InitVelocity float64
	Steps        int
	Duration     float64
	Damping      float64
	DriveAmp     float64
	DriveFreq    float64
}

func DefaultOptions() Options {
	return Options{
		Steps:     DefaultSteps,
		Duration:  DefaultDuration,
		DriveFreq: DefaultDriveFreq,
	}
}

// Model simulates a damped, driven harmonic oscillator with the
// Euler-Cromer method. It owns its trajectory and energy series
// exclusively; accessors hand out copies, never the backing arrays.
// A Model is a single-owner value: callers must serialize access.
type Model struct {
	spring    float64 // restoring force constant, kg/s^2
	mass      float64 // kg
	damping   float64 // velocity-proportional damping, kg/s
	driveAmp  float64 // peak driving force, N
	driveFreq float64 // driving angular frequency, rad/s
	initPos   float64
	initVel   float64
	steps     int
	duration  float64
	stepSize  float64

	position     series.Series
	velocity     series.Series
	acceleration series.Series
	times        series.Series

	kinetic   series.Series
	potential series.Series
	total     series.Series

	amplitude float64
	maxVel    float64
	maxAcc    float64
}

// New constructs a model with default optional parameters.
func New(spring, mass, initPos float64) *Model {
	return NewWithOptions(spring, mass, initPos, DefaultOptions())
}

// NewWithOptions constructs a model from the full parameter set. A zero
// drive amplitude forces the drive frequency to zero: a force that never
// acts has no meaningful phase rate. No integration happens here.
func NewWithOptions(spring, mass, initPos float64, opt Options) *Model {
	if opt.DriveAmp == 0 {
		opt.DriveFreq = 0
	}

	m := &Model{
		spring:    spring,
		mass:      mass,
		damping:   opt.Damping,
		driveAmp:  opt.DriveAmp,
		driveFreq: opt.DriveFreq,
		initPos:   initPos,
		initVel:   opt.InitVelocity,
		steps:     opt.Steps,
		duration:  opt.Duration,
	}
	m.alloc()
	return m
}

// alloc discards all trajectory series and reallocates them at steps+1,
// restoring only the index-0 initial conditions.
func (m *Model) alloc() {
	n := m.steps + 1
	m.position = make(series.Series, n)
	m.velocity = make(series.Series, n)
	m.acceleration = make(series.Series, n)
	m.times = make(series.Series, n)

	m.position[0] = m.initPos
	m.velocity[0] = m.initVel

	m.kinetic = nil
	m.potential = nil
	m.total = nil
}

// SetParameter edits a single parameter. Checks run before any mutation,
// so a rejected call leaves the model exactly as it was. Editing never
// triggers recomputation; the caller re-runs Integrate explicitly.
func (m *Model) SetParameter(p Param, value float64) error {
	switch p {
	case ParamSpring:
		if value <= 0 {
			return InvalidParameterError{p, value, "force constant must be greater than zero"}
		}
		m.spring = value
	case ParamMass:
		if value <= 0 {
			return InvalidParameterError{p, value, "mass must be greater than zero"}
		}
		m.mass = value
	case ParamSteps:
		if value <= 0 {
			return InvalidParameterError{p, value, "there must be at least one step"}
		}
		m.steps = int(value)
		m.alloc()
	case ParamDuration:
		if value <= 0 {
			return InvalidParameterError{p, value, "duration must be greater than zero"}
		}
		m.duration = value
	case ParamDamping:
		m.damping = value
	case ParamDriveAmp:
		m.driveAmp = value
	case ParamDriveFreq:
		m.driveFreq = value
	case ParamInitPos:
		// Initial conditions are freely reassignable, sign included.
		m.initPos = value
		m.position[0] = value
	case ParamInitVel:
		m.initVel = value
		m.velocity[0] = value
	case ParamStepSize:
		if value <= 0 {
			return InvalidParameterError{p, value, "step size must be greater than zero"}
		}
		// An alternate way to express duration.
		m.stepSize = value
		m.duration = value * float64(m.steps)
	default:
		return InvalidParameterError{p, value, "unknown parameter"}
	}
	return nil
}

// Integrate runs the Euler-Cromer recurrence over all ticks, overwriting
// the trajectory series in place. Position updates first; velocity then
// uses the already-updated position. That ordering is the method: it is
// what keeps the long-term energy bounded, so it must not be "fixed" to
// read the previous position.
func (m *Model) Integrate() {
	m.stepSize = m.duration / float64(m.steps)
	dt := m.stepSize

	for i := 1; i <= m.steps; i++ {
		m.position[i] = m.position[i-1] + m.velocity[i-1]*dt
		force := m.driveAmp*math.Cos(m.driveFreq*float64(i)*dt) -
			m.damping*m.velocity[i-1] -
			m.spring*m.position[i]
		m.velocity[i] = m.velocity[i-1] + force*dt/m.mass
		m.acceleration[i] = (m.velocity[i] - m.velocity[i-1]) / dt
		m.times[i] = m.times[i-1] + dt
	}

	m.amplitude = m.position.Max()
	m.maxVel = m.velocity.Max()
	m.maxAcc = m.acceleration.Max()
}

// ComputeEnergy derives the kinetic, potential and total energy series
// from the current trajectory. Meaningful only after Integrate has run
// since the last parameter edit.
func (m *Model) ComputeEnergy() {
	n := len(m.position)
	m.kinetic = make(series.Series, n)
	m.potential = make(series.Series, n)
	m.total = make(series.Series, n)

	for i := 0; i < n; i++ {
		m.kinetic[i] = 0.5 * m.mass * m.velocity[i] * m.velocity[i]
		m.potential[i] = 0.5 * m.spring * m.position[i] * m.position[i]
		m.total[i] = m.kinetic[i] + m.potential[i]
	}
}

// DecayCutoff returns the earliest time at which the total energy has
// fallen to 1% or less of its initial value, or the full duration if it
// never does. Plot windows use it to crop a dead tail off damped runs.
func (m *Model) DecayCutoff() float64 {
	if len(m.total) == 0 {
		return m.duration
	}
	threshold := m.total[0] * 0.01
	for i := 0; i < m.steps; i++ {
		if m.total[i] <= threshold {
			return m.times[i]
		}
	}
	return m.duration
}

func (m *Model) Position() series.Series     { return m.position.Clone() }
func (m *Model) Velocity() series.Series     { return m.velocity.Clone() }
func (m *Model) Acceleration() series.Series { return m.acceleration.Clone() }
func (m *Model) Times() series.Series        { return m.times.Clone() }
func (m *Model) Kinetic() series.Series      { return m.kinetic.Clone() }
func (m *Model) Potential() series.Series    { return m.potential.Clone() }
func (m *Model) Total() series.Series        { return m.total.Clone() }

func (m *Model) Amplitude() float64       { return m.amplitude }
func (m *Model) MaxVelocity() float64     { return m.maxVel }
func (m *Model) MaxAcceleration() float64 { return m.maxAcc }

func (m *Model) Spring() float64          { return m.spring }
func (m *Model) Mass() float64            { return m.mass }
func (m *Model) Damping() float64         { return m.damping }
func (m *Model) DriveAmplitude() float64  { return m.driveAmp }
func (m *Model) DriveFrequency() float64  { return m.driveFreq }
func (m *Model) InitialPosition() float64 { return m.initPos }
func (m *Model) InitialVelocity() float64 { return m.initVel }
func (m *Model) Steps() int               { return m.steps }
func (m *Model) Duration() float64        { return m.duration }
func (m *Model) StepSize() float64        { return m.stepSize }

// NaturalFrequency returns sqrt(k/m), the undamped angular frequency.
func (m *Model) NaturalFrequency() float64 {
	return math.Sqrt(m.spring / m.mass)
}
