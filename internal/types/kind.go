package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vesperlang/vesperc/internal/config"
)

// Kind represents the "type of a type": * (Star) classifies proper types
// (Int, Bool, Array Int); k1 -> k2 classifies type constructors (Array,
// Option).
type Kind interface {
	String() string
	Equal(Kind) bool
}

// KStar is the kind of a fully-applied, value-inhabited type.
type KStar struct{}

func (k KStar) String() string { return "*" }
func (k KStar) Equal(other Kind) bool {
	if _, ok := other.(KWildcard); ok {
		return true
	}
	_, ok := other.(KStar)
	return ok
}

// KWildcard matches any other kind — used for built-ins (e.g. a `class()`
// query) that accept a type regardless of its arity.
type KWildcard struct{}

func (k KWildcard) String() string        { return "?" }
func (k KWildcard) Equal(other Kind) bool { return true }

// KVar is an unresolved kind variable produced during kind inference.
type KVar struct {
	Name string
}

func (k KVar) String() string {
	if (config.IsTestMode || config.IsLSPMode) && strings.HasPrefix(k.Name, "k") {
		if _, err := strconv.Atoi(k.Name[1:]); err == nil {
			return "k?"
		}
	}
	return k.Name
}

func (k KVar) Equal(other Kind) bool {
	if ov, ok := other.(KVar); ok {
		return k.Name == ov.Name
	}
	return false
}

// KArrow is a higher-kinded arrow k1 -> k2.
type KArrow struct {
	Left  Kind
	Right Kind
}

func (k KArrow) String() string {
	return fmt.Sprintf("(%s -> %s)", k.Left.String(), k.Right.String())
}

func (k KArrow) Equal(other Kind) bool {
	if _, ok := other.(KWildcard); ok {
		return true
	}
	o, ok := other.(KArrow)
	if !ok {
		return false
	}
	return k.Left.Equal(o.Left) && k.Right.Equal(o.Right)
}

var Star Kind = KStar{}
var AnyKind Kind = KWildcard{}

// MakeArrow builds an N-ary arrow kind, e.g. MakeArrow(Star, Star, Star)
// gives the kind of a two-parameter type constructor.
func MakeArrow(args ...Kind) Kind {
	if len(args) == 0 {
		return Star
	}
	if len(args) == 1 {
		return args[0]
	}
	return KArrow{Left: args[0], Right: MakeArrow(args[1:]...)}
}
