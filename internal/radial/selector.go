// Package radial resolves pointer displacement into one of eight radially
// arranged options and tracks the selection for a single session.
package radial

// Options configures a Selector.
type Options struct {
	// DeadZone is the Manhattan displacement below which the center stays
	// selected. Zero or negative means DefaultDeadZone.
	DeadZone float64
}

// Selector owns the current selection of one radial widget. It is not safe
// for concurrent use; the host serializes calls.
type Selector struct {
	presenter Presenter
	deadZone  float64
	current   int
}

// New returns a selector bound to p. A nil presenter is replaced by a no-op.
func New(p Presenter, opts Options) *Selector {
	if p == nil {
		p = nopPresenter{}
	}
	dz := opts.DeadZone
	if dz <= 0 {
		dz = DefaultDeadZone
	}
	return &Selector{presenter: p, deadZone: dz}
}

// Index returns the current selection.
func (s *Selector) Index() int { return s.current }

// DeadZone returns the effective dead zone.
func (s *Selector) DeadZone() float64 { return s.deadZone }

// Activate starts a session centered on the middle element and shows the widget.
func (s *Selector) Activate() {
	s.current = 0
	s.presenter.Highlight(DesignationSelected, TargetCenter)
	s.presenter.Show()
}

// SetSelectedIndex moves the selection to index. A nil index means the
// center. Indices outside 0..8 are ignored. Selecting the current index
// makes no presenter call. It returns the resulting index.
func (s *Selector) SetSelectedIndex(index *int) int {
	target := 0
	if index != nil {
		target = *index
	}
	if target < 0 || target > 8 || target == s.current {
		return s.current
	}
	s.presenter.Highlight(DesignationSelected, TargetFor(target))
	s.current = target
	return s.current
}

// Select is SetSelectedIndex for a plain index.
func (s *Selector) Select(index int) int {
	return s.SetSelectedIndex(&index)
}

// UpdatePosition selects the option under the displacement (dx, dy) measured
// from where the interaction began.
func (s *Selector) UpdatePosition(dx, dy float64) int {
	return s.Select(Resolve(dx, dy, s.deadZone))
}

// Close marks the current element active, hides the widget and returns the
// final choice.
func (s *Selector) Close() int {
	s.presenter.Highlight(DesignationActive, TargetFor(s.current))
	s.presenter.Hide()
	return s.current
}
