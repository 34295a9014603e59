// SPDX-License-Identifier: MIT

package cmatrix

import (
	"math"
	"math/cmplx"
)

// Euler holds the ZYZ angles of a 2×2 unitary M:
//
//	M = e^{i·Phase} · Rz(Alpha) · Ry(Theta) · Rz(Beta)
//
// with Rz(Beta) applied first. All angles are canonical: Alpha, Beta and
// Phase lie in (−π, π], Theta in [0, π]. Canonicalisation may fold a sign
// flip of the rotation chain into Phase, which is why Phase must always be
// honoured when reconstructing M exactly.
type Euler struct {
	Alpha, Theta, Beta float64
	Phase              float64
}

// ZYZ extracts the Euler angles of a 2×2 unitary.
//
// The global phase is arg(det M)/2; dividing it out leaves a special
// unitary V with V[0][0] = cos(θ/2)·e^{i(α+β)/2} and
// V[0][1] = sin(θ/2)·e^{i(α−β)/2} under the exp(+iθσ/2) rotation
// convention, from which
//
//	θ = 2·atan2(|V[0][1]|, |V[0][0]|)
//	α = arg(V[0][0]) + arg(V[0][1])
//	β = arg(V[0][0]) − arg(V[0][1])
//
// Degenerate cases: a diagonal V (|V[0][1]| < eps) yields β = 0 and
// α = 2·arg(V[0][0]); an anti-diagonal V (|V[0][0]| < eps) contributes no
// arg(V[0][0]) term. Branch choices are pinned by the round-trip tests.
func ZYZ(m *Dense, eps float64) (Euler, error) {
	if m == nil || m.Rows() != 2 || m.Cols() != 2 {
		return Euler{}, ErrBadShape
	}
	if !IsUnitary(m, eps) {
		return Euler{}, ErrNonUnitary
	}

	det := m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	phi := cmplx.Phase(det) / 2
	inv := cmplx.Exp(complex(0, -phi))
	v00 := inv * m.At(0, 0)
	v01 := inv * m.At(0, 1)

	theta := 2 * math.Atan2(cmplx.Abs(v01), cmplx.Abs(v00))

	// Phases of near-zero entries are numerical noise; clamp them to 0.
	arg01, arg00 := 0.0, 0.0
	if cmplx.Abs(v01) >= eps {
		arg01 = cmplx.Phase(v01)
	}
	if cmplx.Abs(v00) >= eps {
		arg00 = cmplx.Phase(v00)
	}

	var alpha, beta float64
	if cmplx.Abs(v01) < eps {
		alpha, beta = 2*arg00, 0
	} else {
		alpha = arg00 + arg01
		beta = arg00 - arg01
	}

	e := Euler{Theta: theta, Phase: phi}
	e.Alpha, e.Phase = wrapWithFlip(alpha, e.Phase)
	e.Beta, e.Phase = wrapWithFlip(beta, e.Phase)
	e.Phase = WrapAngle(e.Phase)

	return e, nil
}

// WrapAngle reduces x to the canonical interval (−π, π].
func WrapAngle(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x <= -math.Pi {
		x += 2 * math.Pi
	} else if x > math.Pi {
		x -= 2 * math.Pi
	}

	return x
}

// wrapWithFlip reduces a rotation angle to (−π, π]. Shifting an Rz or Ry
// angle by 2π negates the rotation matrix, so every 2π shift adds π to the
// global phase to keep the product exact.
func wrapWithFlip(angle, phase float64) (float64, float64) {
	w := WrapAngle(angle)
	// Count 2π shifts between angle and its canonical representative.
	shifts := math.Round((angle - w) / (2 * math.Pi))
	if int(math.Abs(shifts))%2 == 1 {
		phase += math.Pi
	}

	return w, phase
}
