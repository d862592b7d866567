package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// HorizontalSpeed returns the walking speed for the held directions.
// Holding both or neither stops the body.
func HorizontalSpeed(left, right bool, speed float64) float64 {
	switch {
	case left && !right:
		return -speed
	case right && !left:
		return speed
	}
	return 0
}

// IntegrateVertical advances a body's vertical motion one step with
// semi-implicit Euler and lands it on groundY (the line its bottom edge
// rests on). The returned speed is zero whenever the body is grounded.
func IntegrateVertical(y, h, speedY, gravity, maxFall, groundY, dt float64) (newY, newSpeedY float64, onGround bool) {
	airborne := y+h < groundY || speedY < 0
	if airborne {
		speedY = ClampSpeed(speedY+gravity*dt, maxFall)
		y += speedY * dt
	}
	if y+h >= groundY {
		return groundY - h, 0, true
	}
	return y, speedY, false
}
