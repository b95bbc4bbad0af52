package rig

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ChaseRig is the chase camera mount: an offset node placed behind and above its parent,
// with a pivot at the offset's origin. It starts unbound and follows nothing until Attach.
type ChaseRig struct {
	Offset *Node
	Pivot  *Node
}

// NewChaseRig returns an unbound rig whose pivot sits at offset in the parent's local space.
func NewChaseRig(offset rl.Vector3) *ChaseRig {
	o := NewNode("chase-offset")
	o.Local.Position = offset
	p := NewNode("chase-pivot")
	p.SetParent(o)
	return &ChaseRig{Offset: o, Pivot: p}
}

// Attach mounts the rig on parent (the vehicle's visual transform).
func (r *ChaseRig) Attach(parent *Node) {
	r.Offset.SetParent(parent)
}

// Bound reports whether the rig is mounted on a parent.
func (r *ChaseRig) Bound() bool {
	return r.Offset.Parent != nil
}

// PivotWorldPosition returns the pivot in world space. ok is false while the rig is unbound.
func (r *ChaseRig) PivotWorldPosition() (pos rl.Vector3, ok bool) {
	if !r.Bound() {
		return rl.Vector3{}, false
	}
	return r.Pivot.WorldPosition(), true
}
