package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// optSet scans argument lists the way the builtins accept them: flags are
// single-dash tokens recognized by membership regardless of position, and
// clusters like -la or -rf set each registered flag. Tokens that don't look
// like known flags are positional operands; dash tokens containing
// unregistered runes are discarded rather than treated as operands.
//
// A count-style set (head/tail) instead accepts "-n N" and the fused "-N"
// spelling, and records a parse error for malformed counts.
type optSet struct {
	bools map[rune]*bool
	count *int
	args  []string
	err   error
}

func newOpts() *optSet {
	return &optSet{bools: make(map[rune]*bool)}
}

// Bool registers a boolean flag for the given rune and returns its value
// destination.
func (o *optSet) Bool(flag rune) *bool {
	v := new(bool)
	o.bools[flag] = v
	return v
}

// Count registers the line-count option with its default and returns its
// value destination.
func (o *optSet) Count(def int) *int {
	v := new(int)
	*v = def
	o.count = v
	return v
}

// Parse scans args. Scanning stops at the first malformed count; Err
// reports it.
func (o *optSet) Parse(args []string) {
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if !strings.HasPrefix(tok, "-") {
			o.args = append(o.args, tok)
			continue
		}

		if o.count != nil {
			if tok == "-n" && i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil {
					o.err = fmt.Errorf("invalid number '%s'", args[i+1])
					return
				}
				*o.count = n
				i++
				continue
			}
			n, err := strconv.Atoi(tok[1:])
			if err != nil {
				o.err = fmt.Errorf("invalid option '%s'", tok)
				return
			}
			*o.count = n
			continue
		}

		if flags, ok := o.cluster(tok[1:]); ok {
			for _, v := range flags {
				*v = true
			}
		}
		// Unknown dash tokens are dropped.
	}
}

// cluster resolves a run of flag runes, succeeding only when every rune is
// registered.
func (o *optSet) cluster(runes string) ([]*bool, bool) {
	var flags []*bool
	for _, r := range runes {
		v, ok := o.bools[r]
		if !ok {
			return nil, false
		}
		flags = append(flags, v)
	}
	return flags, len(flags) > 0
}

// Args returns the positional operands in order.
func (o *optSet) Args() []string {
	return o.args
}

// Err returns the first parse error, if any.
func (o *optSet) Err() error {
	return o.err
}
