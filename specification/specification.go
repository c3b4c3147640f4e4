package specification

import "github.com/ambisys/frmdp/bellman"

// Specification pairs a Property with the satisfaction and strategy modes
// that drive the robust Bellman operator's reduction direction (spec.md
// §3): make_specification(property, satisfaction_mode, strategy_mode).
type Specification struct {
	property Property
	satMode  bellman.SatisfactionMode
	stratMode bellman.StrategyMode
}

// New builds a Specification, validating both modes.
func New(property Property, satMode bellman.SatisfactionMode, stratMode bellman.StrategyMode) (*Specification, error) {
	if satMode != bellman.Pessimistic && satMode != bellman.Optimistic {
		return nil, ErrInvalidMode
	}
	if stratMode != bellman.Maximize && stratMode != bellman.Minimize {
		return nil, ErrInvalidMode
	}
	return &Specification{property: property, satMode: satMode, stratMode: stratMode}, nil
}

// Property returns the underlying Property.
func (s *Specification) Property() Property { return s.property }

// SatisfactionMode returns the robust Bellman direction.
func (s *Specification) SatisfactionMode() bellman.SatisfactionMode { return s.satMode }

// StrategyMode returns the outer action-reduction direction.
func (s *Specification) StrategyMode() bellman.StrategyMode { return s.stratMode }
