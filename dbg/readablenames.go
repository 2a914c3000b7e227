package dbg

import (
	"fmt"
	"reflect"

	petname "github.com/dustinkirkland/golang-petname"
)

// Assigns lazily-generated readable names to arbitrary pointers. In a
// merge trace, "curious-lemur joined onto wiggly-heron" is a lot
// easier to follow than two hex pointer strings. Names are memoized
// forever; that leak is fine for a debugging aid and nothing else.

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in demand order, so keep them
	// nondeterministic as a reminder that they do not survive between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}
	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s-%s", petname.Adjective(), petname.Name())
	memo[obj] = name
	return name
}
