// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Signal is a lifecycle or introspection notification delivered to a
// drawable object through [Drawable.HandleSignal].
type Signal int32

const (
	// SignalCleanup is delivered while an object is being destroyed,
	// before it is detached from the tree. Handlers release whatever
	// the base object does not know about; borrowed memory such as a
	// bound pixel buffer is never freed.
	SignalCleanup Signal = iota

	// SignalGetType asks the object to append its type name to the
	// *[TypeChain] passed as the signal data, producing the full is-a
	// chain ending at the concrete widget kind.
	SignalGetType

	// SignalStyleChanged reports that the object's style was set or
	// re-resolved.
	SignalStyleChanged

	// SignalSourceChanged reports that the object's display source
	// was registered or rebound; handlers drop cached render state.
	SignalSourceChanged

	// SignalChildAdded reports that a child was added to the object.
	SignalChildAdded
)

var signalNames = map[Signal]string{
	SignalCleanup:       "cleanup",
	SignalGetType:       "get-type",
	SignalStyleChanged:  "style-changed",
	SignalSourceChanged: "source-changed",
	SignalChildAdded:    "child-added",
}

func (s Signal) String() string {
	if n, ok := signalNames[s]; ok {
		return n
	}
	return "signal-unknown"
}

// Result is returned from signal handling.
type Result int32

const (
	// ResultOK means the object is still valid after the signal.
	ResultOK Result = iota

	// ResultDestroyed means the object was destroyed as a side effect
	// of the signal; the caller must not touch it afterward, and
	// overriding handlers must propagate this immediately without
	// further processing.
	ResultDestroyed
)

// MaxTypeDepth is the fixed maximum depth of a [TypeChain].
const MaxTypeDepth = 8

// TypeChain collects type names during [SignalGetType], from the most
// basic ancestor to the concrete widget kind.
type TypeChain struct {
	Names [MaxTypeDepth]string
}

// Add records name in the first unused slot, reporting whether a free
// slot was found. When the chain is already full the last slot is
// overwritten instead, so the most derived name always survives.
func (tc *TypeChain) Add(name string) bool {
	for i, nm := range tc.Names {
		if nm == "" {
			tc.Names[i] = name
			return true
		}
	}
	tc.Names[MaxTypeDepth-1] = name
	return false
}

// List returns the filled entries in order.
func (tc *TypeChain) List() []string {
	for i, nm := range tc.Names {
		if nm == "" {
			return tc.Names[:i]
		}
	}
	return tc.Names[:]
}

// Last returns the most recently added entry, the concrete type,
// or "" for an empty chain.
func (tc *TypeChain) Last() string {
	l := tc.List()
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}
