package riddle

import "math/big"

// InfRational is a rational value carrying an infinitesimal component,
// used to express strict temporal bounds (e.g. "just after t") without
// a dedicated open-interval type. Value is the real part; Eps counts
// multiples of an infinitesimal epsilon added to it.
type InfRational struct {
	Value *big.Rat
	Eps   int64
}

// NewInfRational wraps an exact rational with zero infinitesimal part.
func NewInfRational(v *big.Rat) InfRational {
	return InfRational{Value: new(big.Rat).Set(v), Eps: 0}
}

// NewInfRationalEps wraps a rational plus an explicit epsilon multiple.
func NewInfRationalEps(v *big.Rat, eps int64) InfRational {
	return InfRational{Value: new(big.Rat).Set(v), Eps: eps}
}

// Cmp orders two InfRationals: the real part dominates, the
// infinitesimal part only breaks ties between otherwise-equal reals.
func (r InfRational) Cmp(other InfRational) int {
	if c := r.Value.Cmp(other.Value); c != 0 {
		return c
	}
	switch {
	case r.Eps < other.Eps:
		return -1
	case r.Eps > other.Eps:
		return 1
	default:
		return 0
	}
}

func (r InfRational) Add(other InfRational) InfRational {
	return InfRational{Value: new(big.Rat).Add(r.Value, other.Value), Eps: r.Eps + other.Eps}
}

func (r InfRational) Sub(other InfRational) InfRational {
	return InfRational{Value: new(big.Rat).Sub(r.Value, other.Value), Eps: r.Eps - other.Eps}
}

func (r InfRational) Mul(other InfRational) InfRational {
	return InfRational{Value: new(big.Rat).Mul(r.Value, other.Value), Eps: 0}
}

func (r InfRational) Quo(other InfRational) InfRational {
	return InfRational{Value: new(big.Rat).Quo(r.Value, other.Value), Eps: 0}
}

func (r InfRational) String() string {
	if r.Eps == 0 {
		return r.Value.RatString()
	}
	if r.Eps > 0 {
		return r.Value.RatString() + "+eps"
	}
	return r.Value.RatString() + "-eps"
}
