package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names, so that hull
// jobs and other long-lived objects can be told apart in trace output. Names
// are generated lazily and remembered for the life of the process.

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = r
	return r
}

// Forget drops a remembered name, so that discarded objects can be collected.
func Forget(obj interface{}) {
	memoMu.Lock()
	defer memoMu.Unlock()
	delete(memo, obj)
}

func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
