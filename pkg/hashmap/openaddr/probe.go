package openaddr

import (
	"strings"

	"github.com/pkg/errors"
)

// Probing selects the sequence of slots visited for a key
type Probing int

const (
	Linear Probing = iota
	Perturbed
)

var ErrUnknownProbing = errors.New("openaddr: unknown probing")

func (p Probing) String() string {
	switch p {
	case Linear:
		return "linear"
	case Perturbed:
		return "perturbed"
	}
	return "unknown"
}

// ParseProbing is the inverse of Probing.String
func ParseProbing(s string) (Probing, error) {
	switch strings.ToLower(s) {
	case "linear":
		return Linear, nil
	case "perturbed", "perturbation":
		return Perturbed, nil
	}
	return 0, errors.WithMessagef(ErrUnknownProbing, "%q", s)
}

// perturbShift is how far perturb drops on every perturbed step
const perturbShift = 5

// prober walks the slots of a table for one hashkey
type prober struct {
	kind    Probing
	mask    uint64
	pos     uint64
	perturb uint64
}

func newProber(kind Probing, hashkey, mask uint64) prober {
	return prober{
		kind:    kind,
		mask:    mask,
		pos:     hashkey & mask,
		perturb: hashkey,
	}
}

// next advances to the following slot in the sequence
func (p *prober) next() {
	if p.kind == Perturbed {
		p.pos = (5*p.pos + 1 + p.perturb) & p.mask
		p.perturb >>= perturbShift
		return
	}
	p.pos = (p.pos + 1) & p.mask
}
