package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Name maps arbitrary pointers to memorable names for debug logs. Two
// sub-diagram pointers are much easier to tell apart as "WittyMarmot" and
// "SolidHeron" than as hex addresses. Names are handed out lazily and the
// memo is never released, which only matters if debug logging is on.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are assigned in order of demand, so they are deliberately
	// nondeterministic: the same name never means the same thing between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
