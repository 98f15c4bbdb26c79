package physics

// Tuning holds the per-second movement constants of a body. Every rate the
// body applies is derived per tick by dividing by FrameRate.
type Tuning struct {
	FrameRate float64 `yaml:"frame_rate"`

	WalkSpeed                    float64 `yaml:"walk_speed"`
	WalkAccelerationTime         float64 `yaml:"walk_acceleration_time"`
	WalkDecelerationTime         float64 `yaml:"walk_deceleration_time"`
	WalkOverflowDecelerationTime float64 `yaml:"walk_overflow_deceleration_time"`

	AirAccelerationTime        float64 `yaml:"air_acceleration_time"`
	AirDecelerationTime        float64 `yaml:"air_deceleration_time"`
	AirPassiveDecelerationTime float64 `yaml:"air_passive_deceleration_time"`

	JumpTime             float64 `yaml:"jump_time"`
	JumpHeight           float64 `yaml:"jump_height"`
	JumpSharpness        float64 `yaml:"jump_sharpness"` // lower is smoother
	GravityAcceleration  float64 `yaml:"gravity_acceleration"`
	HardLandingThreshold float64 `yaml:"hard_landing_threshold"`

	WallHangFallAcceleration float64 `yaml:"wall_hang_fall_acceleration"`
	WallHangDeceleration     float64 `yaml:"wall_hang_deceleration"`
	WallHangFallSpeedMax     float64 `yaml:"wall_hang_fall_speed_max"`
	WallHangSize             float64 `yaml:"wall_hang_size"`   // height of the hang probe band
	WallHangOffset           float64 `yaml:"wall_hang_offset"` // probe band start above the body's bottom
	WallJumpHorizontalSpeed  float64 `yaml:"wall_jump_horizontal_speed"`

	CompensationRate float64 `yaml:"compensation_rate"`
}

const defaultFrameRate = 60

func DefaultTuning() Tuning {
	return Tuning{
		FrameRate: defaultFrameRate,

		WalkSpeed:                    8,
		WalkAccelerationTime:         .2,
		WalkDecelerationTime:         .1,
		WalkOverflowDecelerationTime: .5,

		AirAccelerationTime:        .3,
		AirDecelerationTime:        .2,
		AirPassiveDecelerationTime: 1,

		JumpTime:             .3,
		JumpHeight:           2.3,
		JumpSharpness:        1.3,
		GravityAcceleration:  90,
		HardLandingThreshold: 30,

		WallHangFallAcceleration: 20,
		WallHangDeceleration:     20,
		WallHangFallSpeedMax:     2,
		WallHangSize:             .5,
		WallHangOffset:           .2,
		WallJumpHorizontalSpeed:  15,

		CompensationRate: 2,
	}
}

func (t Tuning) frameRate() float64 {
	if t.FrameRate <= 0 {
		return defaultFrameRate
	}
	return t.FrameRate
}

// PerTick converts a per-second speed to distance per tick.
func (t Tuning) PerTick(perSecond float64) float64 {
	return perSecond / t.frameRate()
}

// PerTickSquared converts a per-second-squared acceleration to a per-tick
// velocity change.
func (t Tuning) PerTickSquared(perSecond float64) float64 {
	fr := t.frameRate()
	return perSecond / fr / fr
}

// rate is the per-tick velocity change that takes a body from rest to
// WalkSpeed in seconds.
func (t Tuning) rate(seconds float64) float64 {
	fr := t.frameRate()
	if seconds <= 0 {
		return t.WalkSpeed / fr
	}
	return (t.WalkSpeed / fr) / (seconds * fr)
}

// MaxSpeed is WalkSpeed expressed per tick.
func (t Tuning) MaxSpeed() float64 {
	return t.PerTick(t.WalkSpeed)
}

// JumpTicks is the full jump arc length in ticks.
func (t Tuning) JumpTicks() float64 {
	return t.JumpTime * t.frameRate()
}
