// Package encounter decides how the final confrontation with The Marrow ends.
package encounter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// ErrConfiguration means the win condition is missing or names both rules.
var ErrConfiguration = errors.New("win condition must name either required items or a required count")

// Outcome is the result of the final encounter.
type Outcome string

const (
	Success Outcome = "SUCCESS"
	Failure Outcome = "FAILURE"
)

// Condition is the rule the inventory is judged by. The only
// implementations are RequiredSet and RequiredCount.
type Condition interface {
	// Satisfied reports whether the inventory meets the rule.
	Satisfied(inventory []string) bool
	// Required is the number of items the rule asks for.
	Required() int
	// Describe is a short human-readable form of the rule.
	Describe() string

	sealed()
}

// RequiredSet is won by holding every listed item.
type RequiredSet struct {
	ids   mapset.Set[string]
	order []string
}

// RequireItems builds a set rule. Repeated ids count once.
func RequireItems(ids ...string) RequiredSet {
	s := RequiredSet{ids: mapset.New[string]()}
	for _, id := range ids {
		if s.ids.Has(id) {
			continue
		}
		s.ids.Put(id)
		s.order = append(s.order, id)
	}
	return s
}

func (s RequiredSet) Satisfied(inventory []string) bool {
	held := mapset.New[string]()
	for _, id := range inventory {
		held.Put(id)
	}
	for _, id := range s.order {
		if !held.Has(id) {
			return false
		}
	}
	return true
}

func (s RequiredSet) Required() int { return len(s.order) }

// Missing lists the required ids not in the inventory, in rule order.
func (s RequiredSet) Missing(inventory []string) []string {
	held := mapset.New[string]()
	for _, id := range inventory {
		held.Put(id)
	}
	var missing []string
	for _, id := range s.order {
		if !held.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

func (s RequiredSet) Describe() string {
	return "hold " + strings.Join(s.order, ", ")
}

func (RequiredSet) sealed() {}

// RequiredCount is won by holding at least N items of any kind.
type RequiredCount struct {
	n int
}

// RequireCount builds a count rule.
func RequireCount(n int) RequiredCount {
	return RequiredCount{n: n}
}

func (c RequiredCount) Satisfied(inventory []string) bool {
	return len(inventory) >= c.n
}

func (c RequiredCount) Required() int { return c.n }

func (c RequiredCount) Describe() string {
	return fmt.Sprintf("hold at least %d items", c.n)
}

func (RequiredCount) sealed() {}

// NewCondition builds a rule from configuration, where exactly one of ids
// or count must be given.
func NewCondition(ids []string, count int) (Condition, error) {
	switch {
	case len(ids) > 0 && count != 0:
		return nil, fmt.Errorf("%w: got %d items and count %d", ErrConfiguration, len(ids), count)
	case len(ids) > 0:
		return RequireItems(ids...), nil
	case count > 0:
		return RequireCount(count), nil
	case count < 0:
		return nil, fmt.Errorf("%w: negative count %d", ErrConfiguration, count)
	default:
		return nil, ErrConfiguration
	}
}

// Evaluate judges the inventory. It has no side effects; narration is the
// caller's job and must only follow a nil error.
func Evaluate(inventory []string, c Condition) (Outcome, error) {
	if c == nil {
		return "", ErrConfiguration
	}
	if c.Satisfied(inventory) {
		return Success, nil
	}
	return Failure, nil
}
