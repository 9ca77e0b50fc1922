package codegen

import (
	"fmt"
	"strings"

	"github.com/vesperlang/vesperc/internal/ir"
)

// charRewrites maps a surface character forbidden in a destination-VM
// identifier to its literal replacement substring (spec.md §4.F.3). Built as
// a small rewrite table in idiom (config.TrimSourceExt's
// small-helper style), since this is a dialect-neutral IR with no name-mangling
// convention — Funxy has no private-identifier rule.
var charRewrites = map[byte]string{
	'!': "__erg_proc__",
	'$': "__erg_shared__",
}

// Mangle produces the destination-VM identifier for a source name, given
// the resolved VarInfo at its binding site. Private identifiers get their
// definition position folded in (::name_L{line}_C{column}) so same-named
// bindings in different scopes never collide, while remaining a pure
// (deterministic) function of name+position rather than a counter. Public
// identifiers (ir.Public) are left unmangled on purpose: host-level
// reflection (hasattr) must be able to find them by their surface name
// (original_source/codegen.rs ~L98-110 confirms this asymmetry). Names
// already carrying the compiler-generated prefix "%" are never mangled.
func Mangle(name string, info *ir.VarInfo) string {
	if strings.HasPrefix(name, "%") {
		return name
	}
	rewritten := rewriteChars(name)
	if info == nil || info.Visibility == ir.Public {
		return rewritten
	}
	return fmt.Sprintf("::%s_L%d_C%d", rewritten, info.DefPos.Line, info.DefPos.Column)
}

func rewriteChars(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		if rep, ok := charRewrites[name[i]]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// GenSym produces a deterministic, collision-free compiler-generated name
// (e.g. for a synthesized match-arm temporary), using the unit's own
// sequence counter instead of a uuid so output is reproducible across runs
// of the same input.
func (u *CodeGenUnit) GenSym(tag string) string {
	return fmt.Sprintf("%%%s%d", tag, u.nextSeq())
}
