// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "github.com/go-gl/mathgl/mgl32"

// Node is a composite scene graph node: a named transform with children
// and an optional drawable payload. Mobjects own a group node and forward
// transform calls to it rather than inheriting node behavior.
//
// Nodes are not safe for concurrent mutation; the frame loop serializes
// all access.
type Node struct {
	name     string
	parent   *Node
	children []*Node

	position mgl32.Vec3
	rotation mgl32.Vec3 // Euler XYZ, radians
	scale    mgl32.Vec3

	drawable any
}

// NewNode creates a detached node with identity transform.
func NewNode(name string) *Node {
	return &Node{
		name:  name,
		scale: mgl32.Vec3{1, 1, 1},
	}
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children. The returned slice is owned by the
// node and must not be mutated.
func (n *Node) Children() []*Node { return n.children }

// Add attaches child to n, detaching it from any previous parent first.
// Adding nil or the node itself is a no-op.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches child from n. It reports whether child was found.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveFromParent detaches the node from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// SetDrawable attaches a drawable payload to the node. Pass nil to clear.
func (n *Node) SetDrawable(d any) { n.drawable = d }

// Drawable returns the node's drawable payload, or nil.
func (n *Node) Drawable() any { return n.drawable }

// SetPosition sets the local translation.
func (n *Node) SetPosition(x, y, z float32) { n.position = mgl32.Vec3{x, y, z} }

// Position returns the local translation.
func (n *Node) Position() mgl32.Vec3 { return n.position }

// SetRotation sets the local Euler XYZ rotation in radians.
func (n *Node) SetRotation(x, y, z float32) { n.rotation = mgl32.Vec3{x, y, z} }

// Rotation returns the local Euler XYZ rotation in radians.
func (n *Node) Rotation() mgl32.Vec3 { return n.rotation }

// SetScale sets the local scale.
func (n *Node) SetScale(x, y, z float32) { n.scale = mgl32.Vec3{x, y, z} }

// Scale returns the local scale.
func (n *Node) Scale() mgl32.Vec3 { return n.scale }

// LocalMatrix returns the node's local transform, composed as
// translate * rotateZ * rotateY * rotateX * scale.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.position.X(), n.position.Y(), n.position.Z())
	r := mgl32.HomogRotate3DZ(n.rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(n.rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(n.rotation.X()))
	s := mgl32.Scale3D(n.scale.X(), n.scale.Y(), n.scale.Z())
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix returns the node's transform composed with all ancestors.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	if n.parent == nil {
		return n.LocalMatrix()
	}
	return n.parent.WorldMatrix().Mul4(n.LocalMatrix())
}

// Walk visits the node and its descendants in depth-first preorder.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.Walk(visit)
	}
}

// Find returns the first descendant (or the node itself) with the given
// name, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) {
		if found == nil && c.name == name {
			found = c
		}
	})
	return found
}
