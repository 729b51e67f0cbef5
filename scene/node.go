// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Node is an entry of the transform tree. A node owns its children and its
// component. The parent pointer is only used to compose transforms.
type Node struct {
	ID   uuid.UUID
	Name string

	Position mgl32.Vec3
	// Rotation holds Euler angles in degrees, applied X, then Y, then Z.
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3

	local  mgl32.Mat4
	global mgl32.Mat4

	parent    *Node
	children  []*Node
	component Component
}

func NewNode(name string) *Node {
	return &Node{
		ID:     uuid.Must(uuid.NewV7()),
		Name:   name,
		Scale:  mgl32.Vec3{1, 1, 1},
		local:  mgl32.Ident4(),
		global: mgl32.Ident4(),
	}
}

// Component returns what the node carries besides its transform, nil for
// plain group nodes.
func (n *Node) Component() Component {
	return n.component
}

// SetComponent replaces the component. The old one is not released.
func (n *Node) SetComponent(c Component) {
	n.component = c
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children in render order. The slice must not be
// modified.
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends c and makes n its parent. A child of another node is
// detached first. c must not be an ancestor of n.
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c and hands its ownership back to the caller.
func (n *Node) RemoveChild(c *Node) bool {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}

// Local is the transform relative to the parent as of the last Update.
func (n *Node) Local() mgl32.Mat4 {
	return n.local
}

// Global is the transform relative to the world as of the last Update.
func (n *Node) Global() mgl32.Mat4 {
	return n.global
}

// WorldPosition is the translation of the global transform.
func (n *Node) WorldPosition() mgl32.Vec3 {
	return n.global.Col(3).Vec3()
}

func (n *Node) calculateLocal() {
	n.local = mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2]).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(n.Rotation[0]))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(n.Rotation[1]))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(n.Rotation[2]))).
		Mul4(mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2]))
}

// Update recomputes the matrices of n and then of all descendants.
func (n *Node) Update() {
	n.calculateLocal()
	if n.parent != nil {
		n.global = n.parent.global.Mul4(n.local)
	} else {
		n.global = n.local
	}
	for _, c := range n.children {
		c.Update()
	}
}

// Render draws the component of n if it belongs to pass and then the
// children in order.
func (n *Node) Render(rc *RenderContext, pass Pass) {
	if d, ok := n.component.(Drawable); ok && PassOf(d.Opacity()) == pass {
		d.Draw(rc, n)
	}
	for _, c := range n.children {
		c.Render(rc, pass)
	}
}

// Destroy releases all descendants, then the own component, and detaches n
// from its parent.
func (n *Node) Destroy() {
	for _, c := range n.children {
		c.parent = nil
		c.Destroy()
	}
	n.children = nil
	if n.component != nil {
		n.component.Release()
		n.component = nil
	}
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Walk visits n and its descendants in pre-order until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the first node in pre-order with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}
