package sim

import "gonum.org/v1/gonum/spatial/r2"

// Integrate advances every live body by Vel*dt (explicit Euler). Velocity is
// left untouched.
func Integrate(w *World, dt float64) {
	w.Each(func(b *Body) bool {
		b.Pos = r2.Add(b.Pos, r2.Scale(dt, b.Vel))
		return true
	})
}
