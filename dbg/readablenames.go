// Package dbg turns pointers into memorable names for debug output.
package dbg

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	petname "github.com/dustinkirkland/golang-petname"
)

// Names are handed out lazily the first time an object is seen, and remembered
// for as long as the process runs (or until Reset). That leaks, but only when
// something is actually printing debug names.
//
// Since names are generated in order of demand, they are nondeterministic, as
// a reminder that the same name does not refer to the same object between
// runs.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := capitalize(petname.Adjective()) + capitalize(petname.Name())
	memo[obj] = name
	return name
}

// Forget every name handed out so far
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	memo = make(map[interface{}]string)
}

func capitalize(word string) string {
	for i, r := range word {
		return string(unicode.ToUpper(r)) + strings.ToLower(word[i+len(string(r)):])
	}
	return word
}
