// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object provides the base drawable object of the quill widget
// tree: parent/child structure, style storage, display-source
// registration, and signal delivery. Widgets embed [Object] and
// override [Drawable] methods, chaining to the embedded implementation
// first, which is the explicit ancestor delegation the signal contract
// requires.
//
// The model is single threaded: objects must only be accessed from the
// goroutine that owns the enclosing tree and render loop.
package object

import (
	"image"
	"log/slog"
	"strconv"

	"github.com/jinzhu/copier"
	"golang.org/x/image/draw"

	"github.com/quillui/quill/pix"
	"github.com/quillui/quill/styles"
	"github.com/quillui/quill/types"
)

// Drawable is the interface all drawable objects satisfy. The core
// functionality is defined on [Object], which all higher-level widget
// types must embed; this interface contains only what widgets override.
type Drawable interface {
	// AsObject returns the base [Object] of this Drawable.
	AsObject() *Object

	// Init is called exactly once when the object is initialized,
	// before it is added to a parent.
	Init()

	// HandleSignal processes one signal. Overriding implementations
	// must call the embedded type's HandleSignal first and propagate
	// a non-[ResultOK] result immediately, without touching the
	// object further.
	HandleSignal(sig Signal, data any) Result

	// Render draws this object onto the frame. It does not render
	// children; see [RenderTree].
	Render(frame *image.RGBA)
}

var objectType = types.AddType(&types.Type{
	Name:     "github.com/quillui/quill/object.Object",
	IDName:   "object",
	Instance: &Object{},
})

// Object is the base drawable object. It must be initialized through
// [New], [InitNode], or a widget constructor so that This is set.
type Object struct {
	// Name is the name of this object, unique among the children of
	// its parent. If not set, it defaults to the type ID name plus
	// the lifetime child count of the parent.
	Name string `copier:"-"`

	// This is the object as its true underlying type, so that methods
	// defined on Object can call overridden methods. It is nil after
	// the object is destroyed.
	This Drawable `copier:"-"`

	// Parent is the parent of this object, set when the object is
	// added as a child. Objects have at most one parent.
	Parent Drawable `copier:"-"`

	// Children is the list of children of this object.
	Children []Drawable `copier:"-"`

	// Style holds the resolved presentation attributes.
	Style styles.Style

	// Geom is the object's placement on the frame, in pixels.
	Geom image.Rectangle

	// stylers are applied in order by RefreshStyle.
	stylers []styles.Func

	// src is the registered display source, if any.
	src *pix.Descriptor

	// numLifetimeChildren counts children ever added, for naming.
	numLifetimeChildren uint64
}

// AsObject returns the base [Object].
func (ob *Object) AsObject() *Object { return ob }

// Init sets style defaults. Widgets embedding Object should call it
// first from their own Init.
func (ob *Object) Init() {
	ob.Style.Defaults()
}

// Destroyed reports whether the object has been destroyed.
func (ob *Object) Destroyed() bool { return ob.This == nil }

// String returns the name of the object, for logging.
func (ob *Object) String() string {
	if ob == nil {
		return "nil"
	}
	return ob.Name
}

// InitNode initializes the given object, setting This and calling
// [Drawable.Init] exactly once.
func InitNode(this Drawable) {
	ob := this.AsObject()
	if ob.This != this {
		ob.This = this
		ob.This.Init()
	}
}

// New creates and initializes an object of the given type and adds it
// to parent. A nil parent makes a root object. If the parent has been
// destroyed, New logs an error and returns the zero value so that no
// partially constructed widget remains reachable from the tree.
func New[T any, PT interface {
	Drawable
	*T
}](parent Drawable) PT {
	if parent != nil && parent.AsObject().Destroyed() {
		slog.Error("object.New: parent is destroyed", "parent", parent.AsObject().Name)
		var zero PT
		return zero
	}
	n := PT(new(T))
	InitNode(n)
	if parent != nil {
		parent.AsObject().AddChild(n)
	}
	return n
}

// AddChild adds the given initialized object at the end of the
// children list, setting its parent and default name, and delivers
// [SignalChildAdded] to this object.
func (ob *Object) AddChild(kid Drawable) {
	InitNode(kid)
	ob.Children = append(ob.Children, kid)
	k := kid.AsObject()
	k.Parent = ob.This
	ob.numLifetimeChildren++
	if k.Name == "" {
		k.Name = typeID(kid) + "-" + strconv.FormatUint(ob.numLifetimeChildren-1, 10)
	}
	if ob.This != nil {
		ob.This.HandleSignal(SignalChildAdded, kid)
	}
}

// typeID returns the registered ID name of the given object's type,
// falling back to the base "object".
func typeID(d Drawable) string {
	if tp := types.TypeByValue(d); tp != nil {
		return tp.IDName
	}
	return objectType.IDName
}

// Child returns the child at the given index, or nil if out of range.
func (ob *Object) Child(i int) Drawable {
	if i < 0 || i >= len(ob.Children) {
		return nil
	}
	return ob.Children[i]
}

// ChildByName returns the first child with the given name, or nil.
func (ob *Object) ChildByName(name string) Drawable {
	for _, kid := range ob.Children {
		if kid.AsObject().Name == name {
			return kid
		}
	}
	return nil
}

// Destroy recursively destroys the object and all of its children,
// delivering [SignalCleanup] through the full handler chain first.
// Borrowed display-source memory is never freed here.
func (ob *Object) Destroy() {
	if ob.Destroyed() {
		return
	}
	ob.This.HandleSignal(SignalCleanup, nil)
	kids := ob.Children
	ob.Children = ob.Children[:0]
	for _, kid := range kids {
		kid.AsObject().Destroy()
	}
	ob.src = nil
	ob.This = nil
}

// Delete removes the object from its parent's children list and then
// destroys it.
func (ob *Object) Delete() {
	if ob.Parent != nil {
		p := ob.Parent.AsObject()
		for i, kid := range p.Children {
			if kid.AsObject() == ob {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
		ob.Parent = nil
	}
	ob.Destroy()
}

// SetSource registers the given descriptor as the object's display
// source and delivers [SignalSourceChanged] so cached render state is
// refreshed. The descriptor is borrowed, not copied.
func (ob *Object) SetSource(d *pix.Descriptor) {
	ob.src = d
	if ob.This != nil {
		ob.This.HandleSignal(SignalSourceChanged, nil)
	}
}

// Source returns the registered display source, or nil.
func (ob *Object) Source() *pix.Descriptor { return ob.src }

// SetStyle replaces the object's style and delivers
// [SignalStyleChanged].
func (ob *Object) SetStyle(s styles.Style) {
	ob.Style = s
	if ob.This != nil {
		ob.This.HandleSignal(SignalStyleChanged, nil)
	}
}

// Styler adds a styler function, run by [Object.RefreshStyle].
func (ob *Object) Styler(f styles.Func) {
	ob.stylers = append(ob.stylers, f)
}

// RefreshStyle re-resolves the style by running the styler chain over
// the current style and delivers [SignalStyleChanged].
func (ob *Object) RefreshStyle() {
	for _, f := range ob.stylers {
		f(&ob.Style)
	}
	if ob.This != nil {
		ob.This.HandleSignal(SignalStyleChanged, nil)
	}
}

// SetGeom sets the object's placement on the frame.
func (ob *Object) SetGeom(r image.Rectangle) { ob.Geom = r }

// ContentBBox returns the geometry inset by the border and padding.
func (ob *Object) ContentBBox() image.Rectangle {
	return ob.Geom.Inset(ob.Style.BorderWidth + ob.Style.Padding)
}

// HandleSignal is the base signal handler. It contributes the base
// "object" entry to [SignalGetType] chains and reports
// [ResultDestroyed] for objects that are already destroyed.
func (ob *Object) HandleSignal(sig Signal, data any) Result {
	if ob.Destroyed() {
		return ResultDestroyed
	}
	if sig == SignalGetType {
		if tc, ok := data.(*TypeChain); ok {
			tc.Add(objectType.IDName)
		}
	}
	return ResultOK
}

// TypeOf delivers [SignalGetType] to the object and returns the
// resulting is-a chain, from base to concrete kind.
func TypeOf(d Drawable) *TypeChain {
	tc := &TypeChain{}
	d.HandleSignal(SignalGetType, tc)
	return tc
}

// Render draws the object's background and border per its style.
func (ob *Object) Render(frame *image.RGBA) {
	st := &ob.Style
	if bg := styles.ApplyOpacity(st.Background, st.Opacity); bg.A > 0 {
		draw.Draw(frame, ob.Geom.Inset(st.BorderWidth), image.NewUniform(bg), image.Point{}, draw.Over)
	}
	if st.BorderWidth <= 0 {
		return
	}
	bc := styles.ApplyOpacity(st.Border, st.Opacity)
	if bc.A == 0 {
		return
	}
	g := ob.Geom
	w := st.BorderWidth
	u := image.NewUniform(bc)
	for _, r := range []image.Rectangle{
		image.Rect(g.Min.X, g.Min.Y, g.Max.X, g.Min.Y+w),
		image.Rect(g.Min.X, g.Max.Y-w, g.Max.X, g.Max.Y),
		image.Rect(g.Min.X, g.Min.Y+w, g.Min.X+w, g.Max.Y-w),
		image.Rect(g.Max.X-w, g.Min.Y+w, g.Max.X, g.Max.Y-w),
	} {
		draw.Draw(frame, r, u, image.Point{}, draw.Over)
	}
}

// RenderTree renders the object and then all of its children,
// depth-first in child order.
func RenderTree(root Drawable, frame *image.RGBA) {
	ob := root.AsObject()
	if ob.Destroyed() {
		return
	}
	ob.This.Render(frame)
	for _, kid := range ob.Children {
		RenderTree(kid, frame)
	}
}

// WalkDown calls fun on the object and then on all of its children,
// depth-first. Returning false from fun prunes the walk below that
// object.
func WalkDown(d Drawable, fun func(Drawable) bool) {
	ob := d.AsObject()
	if ob.Destroyed() || !fun(d) {
		return
	}
	for _, kid := range ob.Children {
		WalkDown(kid, fun)
	}
}

// CopyFieldsFrom copies the presentation fields of the object from the
// given object, honoring `copier:"-"` opt-outs: tree structure, names,
// and bound buffer data are never copied.
func (ob *Object) CopyFieldsFrom(from Drawable) {
	// the registered display source and the child naming counter are
	// this object's own state; a copy must never point at the source
	// widget's descriptor
	src := ob.src
	nlc := ob.numLifetimeChildren
	err := copier.CopyWithOption(ob.This, from.AsObject().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("object.CopyFieldsFrom", "err", err)
	}
	ob.src = src
	ob.numLifetimeChildren = nlc
	ob.stylers = append(ob.stylers[:0], from.AsObject().stylers...)
}
