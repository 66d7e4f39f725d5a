// Package projectile is a small ballistic simulation used to exercise the
// tuple algebra and to draw trajectory plots.
package projectile

import "github.com/dsharma-dev/go-phong-raytracer/pkg/math"

// Projectile is a point mass with a position and velocity
type Projectile struct {
	Position math.Tuple
	Velocity math.Tuple
}

// Environment holds the constant forces acting on a projectile
type Environment struct {
	Gravity math.Tuple
	Wind    math.Tuple
}

// Tick advances the projectile by one time step: position moves by the
// velocity, and the velocity picks up gravity and wind.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory runs ticks until the projectile falls to or below y=0,
// returning every position visited including the start. maxTicks bounds
// runaway configurations such as upward gravity.
func Trajectory(env Environment, p Projectile, maxTicks int) []math.Tuple {
	positions := []math.Tuple{p.Position}
	for i := 0; i < maxTicks && p.Position.Y > 0; i++ {
		p = Tick(env, p)
		positions = append(positions, p.Position)
	}
	return positions
}
