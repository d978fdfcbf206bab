// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides a runtime registry of drawable object types.
// Types are registered once, at package init time, and looked up by
// name or by instance value; introspection code uses the registered
// IDName as the entry a type contributes to an is-a chain.
package types

import (
	"reflect"
	"sync/atomic"
)

// Type represents a registered object type.
type Type struct {
	// Name is the fully package-path-qualified name of the type
	// (e.g. github.com/quillui/quill/widgets.Canvas).
	Name string

	// IDName is the short, package-unqualified, kebab-case name of
	// the type (e.g. canvas), used in type chains and theme files.
	IDName string

	// Instance is an instance of the type, used for lookup by value.
	Instance any

	// ID is the unique type ID number, assigned at registration.
	ID uint64
}

func (tp *Type) String() string { return tp.Name }

var (
	// types is the registry, keyed by long type name. It is written
	// only from package init functions, so no locking is needed.
	types = map[string]*Type{}

	idCounter uint64
)

// AddType adds the given type to the registry and returns it, assigning
// its ID. It must be called from a package init function (one-time
// registration); registering the same name twice keeps the first entry.
func AddType(tp *Type) *Type {
	if have, ok := types[tp.Name]; ok {
		return have
	}
	tp.ID = atomic.AddUint64(&idCounter, 1)
	types[tp.Name] = tp
	return tp
}

// TypeByName returns the registered type with the given long name,
// or nil if there is none.
func TypeByName(name string) *Type {
	return types[name]
}

// TypeName returns the long name of the given value's type, for use as
// a registry key.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// TypeByValue returns the registered type of the given value,
// or nil if it has none.
func TypeByValue(v any) *Type {
	return TypeByName(TypeName(v))
}
