package hydraulics

// Derived holds the quantities that follow from a friction factor.
type Derived struct {
	// PressureDrop in Pa and Power in W are nil unless the length is positive.
	PressureDrop *float64
	Power        *float64

	DriveForce   float64
	FrictionLoss float64
}

// Derive computes pressure drop, power, drive force and friction loss for
// friction factor f, density rho, velocity v, diameter d and length l.
//
// Pressure drop and power are unavailable for a zero length. Friction loss
// is always evaluated and is simply zero in that case.
func Derive(f, rho, v, d, l float64) Derived {
	area := CrossSection(d)
	out := Derived{
		DriveForce:   area * rho * v,
		FrictionLoss: f * (l / d) * (v * v / (2 * StandardGravity)),
	}
	if l > 0 {
		dp := 2 * rho * v * v * l / d * f
		power := dp * area * v
		out.PressureDrop = &dp
		out.Power = &power
	}
	return out
}
