package model

import "fmt"

type policyKind uint8

const (
	allDead policyKind = iota
	allAlive
	randomUniform
)

// InitPolicy decides the starting state of every cell in a new world
type InitPolicy struct {
	kind policyKind
	p    float64
}

func AllDead() InitPolicy { return InitPolicy{kind: allDead} }

func AllAlive() InitPolicy { return InitPolicy{kind: allAlive} }

// RandomUniform makes each cell alive independently with probability p
func RandomUniform(p float64) InitPolicy { return InitPolicy{kind: randomUniform, p: p} }

// DefaultRandom is RandomUniform(0.5)
func DefaultRandom() InitPolicy { return RandomUniform(0.5) }

func (p InitPolicy) String() string {
	switch p.kind {
	case allAlive:
		return "AllAlive"
	case randomUniform:
		return fmt.Sprintf("RandomUniform(p=%g)", p.p)
	default:
		return "AllDead"
	}
}

func (p InitPolicy) draw(src RandomSource) CellState {
	switch p.kind {
	case allAlive:
		return Alive
	case randomUniform:
		if src.Float64() < p.p {
			return Alive
		}
	}
	return Dead
}
