// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLocalOrder(t *testing.T) {
	n := NewNode("n")
	n.Position = mgl32.Vec3{1, 2, 3}
	n.Rotation = mgl32.Vec3{10, 20, 30}
	n.Scale = mgl32.Vec3{2, 3, 4}
	n.Update()

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(10))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(20))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(30))).
		Mul4(mgl32.Scale3D(2, 3, 4))
	if !n.Local().ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Local() = %v, want %v", n.Local(), want)
	}
	if n.Global() != n.Local() {
		t.Errorf("root Global() = %v, want Local() %v", n.Global(), n.Local())
	}
}

func TestGlobalComposition(t *testing.T) {
	root := NewNode("root")
	root.Position = mgl32.Vec3{0, -2, 0}
	parent := NewNode("parent")
	parent.Position = mgl32.Vec3{1, 2, 3}
	parent.Rotation = mgl32.Vec3{0, 90, 0}
	parent.Scale = mgl32.Vec3{2, 2, 2}
	child := NewNode("child")
	child.Position = mgl32.Vec3{1, 0, 0}
	root.AddChild(parent)
	parent.AddChild(child)
	root.Update()

	for _, n := range []*Node{parent, child} {
		want := n.Parent().Global().Mul4(n.Local())
		if !n.Global().ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("%s Global() = %v, want %v", n.Name, n.Global(), want)
		}
	}
	// parent turns +x into -z and doubles it
	if got, want := child.WorldPosition(), (mgl32.Vec3{1, 0, 1}); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("child WorldPosition() = %v, want %v", got, want)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	root := NewNode("root")
	c := NewNode("c")
	c.Position = mgl32.Vec3{3, 4, 5}
	c.Rotation = mgl32.Vec3{45, 0, 12}
	root.AddChild(c)
	root.Update()
	l, g := c.Local(), c.Global()
	root.Update()
	if c.Local() != l || c.Global() != g {
		t.Errorf("second Update changed the matrices")
	}
}

func TestStaleUntilUpdate(t *testing.T) {
	n := NewNode("n")
	n.Update()
	n.Position = mgl32.Vec3{1, 0, 0}
	if n.Global() != mgl32.Ident4() {
		t.Errorf("Global() changed before Update")
	}
	n.Update()
	if got := n.WorldPosition(); got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("WorldPosition() = %v", got)
	}
}

func TestChildren(t *testing.T) {
	a, b := NewNode("a"), NewNode("b")
	c := NewNode("c")
	a.AddChild(c)
	b.AddChild(c)
	if len(a.Children()) != 0 || c.Parent() != b {
		t.Errorf("AddChild did not move c from a to b")
	}
	if !b.RemoveChild(c) || c.Parent() != nil || len(b.Children()) != 0 {
		t.Errorf("RemoveChild did not detach c")
	}
	if b.RemoveChild(c) {
		t.Errorf("RemoveChild of a stranger succeeded")
	}
	if a.ID == b.ID {
		t.Errorf("nodes share the id %v", a.ID)
	}
}

func TestWalkFind(t *testing.T) {
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a)
	a.AddChild(b)
	root.AddChild(c)

	var order []string
	root.Walk(func(n *Node) bool {
		order = append(order, n.Name)
		return true
	})
	want := []string{"root", "a", "b", "c"}
	for i := range want {
		if i >= len(order) || order[i] != want[i] {
			t.Fatalf("Walk order %q, want %q", order, want)
		}
	}
	if root.Find("b") != b {
		t.Errorf("Find(b) failed")
	}
	if root.Find("x") != nil {
		t.Errorf("Find(x) found something")
	}
}

type released struct {
	name string
	log  *[]string
}

func (r *released) Release() {
	*r.log = append(*r.log, r.name)
}

func TestDestroyPostOrder(t *testing.T) {
	var log []string
	mk := func(name string) *Node {
		n := NewNode(name)
		n.SetComponent(&released{name, &log})
		return n
	}
	root, a, b, c := mk("root"), mk("a"), mk("b"), mk("c")
	root.AddChild(a)
	a.AddChild(b)
	root.AddChild(c)

	root.Destroy()
	want := []string{"b", "a", "c", "root"}
	if len(log) != len(want) {
		t.Fatalf("released %q, want %q", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("released %q, want %q", log, want)
			break
		}
	}
	if len(root.Children()) != 0 || a.Parent() != nil {
		t.Errorf("tree not taken apart")
	}
}

func TestDestroySubtree(t *testing.T) {
	root, a := NewNode("root"), NewNode("a")
	root.AddChild(a)
	a.Destroy()
	if len(root.Children()) != 0 {
		t.Errorf("destroyed child still attached")
	}
}

func TestPassOf(t *testing.T) {
	for _, tc := range []struct {
		o    float32
		want Pass
	}{
		{1, Opaque},
		{0.95, Opaque},
		{0.9, Opaque},
		{0.89, Blended},
		{0.4, Blended},
		{0, Blended},
		{1.5, Opaque},
		{-1, Blended},
	} {
		if got := PassOf(tc.o); got != tc.want {
			t.Errorf("PassOf(%v) = %v, want %v", tc.o, got, tc.want)
		}
	}
}

func TestAnimations(t *testing.T) {
	n := NewNode("n")
	s := &Spin{Rate: mgl32.Vec3{0, 50, 0}}
	s.Animate(n, 0.1)
	s.Animate(n, 0.1)
	if got := n.Rotation; !got.ApproxEqualThreshold(mgl32.Vec3{0, 10, 0}, 1e-5) {
		t.Errorf("Spin rotation = %v", got)
	}
	b := &Bob{Base: mgl32.Vec3{2, 8, 0}, Amplitude: 0.5, Frequency: 2}
	b.Animate(n, 0)
	if got := n.Position; got != (mgl32.Vec3{2, 8, 0}) {
		t.Errorf("Bob at t=0 = %v", got)
	}
	// a quarter period up
	b.Animate(n, mgl32.DegToRad(45))
	if got := n.Position; !got.ApproxEqualThreshold(mgl32.Vec3{2, 8.5, 0}, 1e-5) {
		t.Errorf("Bob at peak = %v", got)
	}
}
