package oscillator

import "fmt"

// Param identifies a tunable parameter of the oscillator. The set is
// closed: anything outside it is rejected by ParseParam and SetParameter.
type Param string

const (
	ParamSpring    Param = "spring"
	ParamMass      Param = "mass"
	ParamSteps     Param = "steps"
	ParamDuration  Param = "duration"
	ParamDamping   Param = "damping"
	ParamDriveAmp  Param = "drive_amp"
	ParamDriveFreq Param = "drive_freq"
	ParamInitPos   Param = "init_pos"
	ParamInitVel   Param = "init_vel"
	ParamStepSize  Param = "step_size"
)

var paramNames = map[Param]bool{
	ParamSpring:    true,
	ParamMass:      true,
	ParamSteps:     true,
	ParamDuration:  true,
	ParamDamping:   true,
	ParamDriveAmp:  true,
	ParamDriveFreq: true,
	ParamInitPos:   true,
	ParamInitVel:   true,
	ParamStepSize:  true,
}

// ParseParam converts a runtime string (CLI flag, form field) into a Param.
func ParseParam(name string) (Param, error) {
	p := Param(name)
	if !paramNames[p] {
		return "", InvalidParameterError{Param: p, Reason: "unknown parameter"}
	}
	return p, nil
}

// InvalidParameterError reports a rejected SetParameter call. The model's
// state is unchanged when one is returned.
type InvalidParameterError struct {
	Param  Param
	Value  float64
	Reason string
}

func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Param, e.Value, e.Reason)
}
