package quadra

// Group is a container node. Members are updated and drawn in order; the
// last member is drawn on top. A Group has no transform of its own.
type Group struct {
	Gizmo
	members []Node
	passBuf []Node
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends n to the group and returns it.
// If n already belongs to a group, it is removed from that group first.
// Panics if n is nil or n is an ancestor of this group (cycle).
func (g *Group) Add(n Node) Node {
	g.attach(n)
	g.members = append(g.members, n)
	if globalDebug {
		debugCheckGroupSize(g)
	}
	return n
}

// AddToBack inserts n at the front of the draw order.
// Same reparenting and cycle-check behavior as Add.
func (g *Group) AddToBack(n Node) Node {
	g.attach(n)
	g.members = append(g.members, nil)
	copy(g.members[1:], g.members)
	g.members[0] = n
	if globalDebug {
		debugCheckGroupSize(g)
	}
	return n
}

func (g *Group) attach(n Node) {
	if n == nil {
		panic("quadra: cannot add nil node")
	}
	gz := n.gizmo()
	if globalDebug {
		debugCheckDestroyed(&g.Gizmo, "Add (group)")
		debugCheckDestroyed(gz, "Add (node)")
	}
	if g.isDescendantOf(gz) {
		panic("quadra: adding node would create a cycle")
	}
	if gz.parent != nil {
		gz.parent.removeByGizmo(gz)
	}
	gz.parent = g
}

// isDescendantOf reports whether candidate is g or one of g's ancestors.
func (g *Group) isDescendantOf(candidate *Gizmo) bool {
	for p := g; p != nil; p = p.parent {
		if &p.Gizmo == candidate {
			return true
		}
	}
	return false
}

// Remove detaches n from the group. Returns false if n is not a member.
func (g *Group) Remove(n Node) bool {
	if n == nil {
		return false
	}
	return g.removeByGizmo(n.gizmo())
}

// removeByGizmo removes the member owning gz without retaining a dangling
// pointer in the backing array.
func (g *Group) removeByGizmo(gz *Gizmo) bool {
	for i, m := range g.members {
		if m.gizmo() == gz {
			copy(g.members[i:], g.members[i+1:])
			g.members[len(g.members)-1] = nil
			g.members = g.members[:len(g.members)-1]
			gz.parent = nil
			return true
		}
	}
	return false
}

// IndexOf returns the position of n among the members, or -1.
func (g *Group) IndexOf(n Node) int {
	for i, m := range g.members {
		if m == n {
			return i
		}
	}
	return -1
}

// Members returns the member list. The returned slice MUST NOT be mutated by the caller.
func (g *Group) Members() []Node {
	return g.members
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// BringToFront moves n to the end of the draw order.
func (g *Group) BringToFront(n Node) {
	i := g.IndexOf(n)
	if i < 0 || i == len(g.members)-1 {
		return
	}
	copy(g.members[i:], g.members[i+1:])
	g.members[len(g.members)-1] = n
}

// SendToBack moves n to the start of the draw order.
func (g *Group) SendToBack(n Node) {
	i := g.IndexOf(n)
	if i <= 0 {
		return
	}
	copy(g.members[1:i+1], g.members[:i])
	g.members[0] = n
}

// Clear detaches every member. Members are NOT destroyed.
func (g *Group) Clear() {
	for _, m := range g.members {
		m.gizmo().parent = nil
	}
	clear(g.members)
	g.members = g.members[:0]
}

// Update updates every existing, active member. Members may add, remove,
// or destroy nodes of this group while updating; nodes removed during the
// pass are skipped and nodes added during it wait for the next one.
func (g *Group) Update(dt float64) {
	snap := g.takeSnapshot()
	defer g.releaseSnapshot(snap)
	for _, m := range snap {
		gz := m.gizmo()
		if gz.parent == g && gz.Exists() && gz.Active() {
			m.Update(dt)
		}
	}
}

// Draw draws every existing, visible member in order. The same membership
// rules as Update apply.
func (g *Group) Draw(b Backend) {
	snap := g.takeSnapshot()
	defer g.releaseSnapshot(snap)
	for _, m := range snap {
		gz := m.gizmo()
		if gz.parent == g && gz.Exists() && gz.Visible() {
			m.Draw(b)
		}
	}
}

// takeSnapshot copies the member list into the group's pass buffer. The
// buffer is held until release so a nested pass over the same group
// allocates its own.
func (g *Group) takeSnapshot() []Node {
	snap := append(g.passBuf[:0], g.members...)
	g.passBuf = nil
	return snap
}

func (g *Group) releaseSnapshot(snap []Node) {
	clear(snap)
	g.passBuf = snap[:0]
}

// Destroy destroys every member, then the group itself.
func (g *Group) Destroy() {
	members := g.members
	g.members = nil
	for _, m := range members {
		m.gizmo().parent = nil
		m.Destroy()
	}
	g.Gizmo.Destroy()
}
