package rig

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is a parent-relative placement: scale, then rotate, then translate.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

// Identity returns a transform that leaves points unchanged.
func Identity() Transform {
	return Transform{
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.NewVector3(1, 1, 1),
	}
}

// Apply maps a point from this transform's space into its parent's space.
func (t Transform) Apply(p rl.Vector3) rl.Vector3 {
	scaled := rl.Vector3Multiply(p, t.Scale)
	return rl.Vector3Add(t.Position, rl.Vector3RotateByQuaternion(scaled, t.Rotation))
}

// Matrix is the same mapping as Apply in raylib matrix form.
func (t Transform) Matrix() rl.Matrix {
	s := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	r := rl.QuaternionToMatrix(t.Rotation)
	tr := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(s, r), tr)
}

// Node is one link of a transform hierarchy. A nil Parent means Local is already in world space.
type Node struct {
	Name   string
	Local  Transform
	Parent *Node
}

// NewNode returns a parentless node with an identity transform.
func NewNode(name string) *Node {
	return &Node{Name: name, Local: Identity()}
}

// SetParent re-parents n. Passing nil detaches it.
func (n *Node) SetParent(parent *Node) {
	n.Parent = parent
}

// WorldPosition is the node's origin in world space, through the full parent chain.
func (n *Node) WorldPosition() rl.Vector3 {
	return n.ToWorld(rl.Vector3{})
}

// ToWorld maps a point in n's local space into world space.
func (n *Node) ToWorld(p rl.Vector3) rl.Vector3 {
	for cur := n; cur != nil; cur = cur.Parent {
		p = cur.Local.Apply(p)
	}
	return p
}

// WorldMatrix composes the local matrices from n up to the root.
func (n *Node) WorldMatrix() rl.Matrix {
	m := n.Local.Matrix()
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		m = rl.MatrixMultiply(m, cur.Local.Matrix())
	}
	return m
}
