package quadra

// Node is anything that can be a member of a Group. Types outside this
// package become Nodes by embedding Gizmo, Visual, Image, or Group.
type Node interface {
	Update(dt float64)
	Draw(b Backend)
	Destroy()
	gizmo() *Gizmo
}

// Gizmo is the bookkeeping shared by every node: lifecycle flags, the
// owning group, and an optional camera override. The zero value is a live,
// active, visible gizmo with no parent.
type Gizmo struct {
	killed    bool
	inactive  bool
	hidden    bool
	destroyed bool

	parent *Group
	camera *Camera
}

func (g *Gizmo) gizmo() *Gizmo { return g }

// Update advances the gizmo by dt seconds. The base implementation does nothing.
func (g *Gizmo) Update(dt float64) {}

// Draw renders the gizmo. The base implementation does nothing.
func (g *Gizmo) Draw(b Backend) {}

// Destroy detaches the gizmo from its group and marks it destroyed.
// Destroyed gizmos are skipped by Group.Update and Group.Draw.
func (g *Gizmo) Destroy() {
	if g.parent != nil {
		g.parent.removeByGizmo(g)
	}
	g.parent = nil
	g.destroyed = true
}

// IsDestroyed reports whether Destroy has been called.
func (g *Gizmo) IsDestroyed() bool { return g.destroyed }

// Exists reports whether the gizmo takes part in updates and drawing.
func (g *Gizmo) Exists() bool { return !g.killed && !g.destroyed }

// Kill removes the gizmo from the update and draw passes without
// detaching it. Revive undoes Kill.
func (g *Gizmo) Kill() { g.killed = true }

// Revive brings a killed gizmo back.
func (g *Gizmo) Revive() { g.killed = false }

// Active reports whether Update is called on this gizmo.
func (g *Gizmo) Active() bool { return !g.inactive }

// SetActive enables or disables updates.
func (g *Gizmo) SetActive(active bool) { g.inactive = !active }

// Visible reports whether Draw is called on this gizmo.
func (g *Gizmo) Visible() bool { return !g.hidden }

// SetVisible shows or hides the gizmo.
func (g *Gizmo) SetVisible(visible bool) { g.hidden = !visible }

// Parent returns the owning group, or nil.
func (g *Gizmo) Parent() *Group { return g.parent }

// SetCamera overrides the camera used to draw this gizmo and, for groups,
// every member that does not set its own.
func (g *Gizmo) SetCamera(c *Camera) { g.camera = c }

// Camera returns the gizmo's own camera, falling back to the nearest
// ancestor's. Returns nil when no camera is set anywhere up the tree.
func (g *Gizmo) Camera() *Camera {
	for p := g; p != nil; {
		if p.camera != nil {
			return p.camera
		}
		if p.parent == nil {
			return nil
		}
		p = &p.parent.Gizmo
	}
	return nil
}
