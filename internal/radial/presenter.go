package radial

import "strconv"

// Designation is a named visual state carried by exactly one element at a time.
type Designation string

const (
	DesignationSelected Designation = "selected"
	DesignationActive   Designation = "active"
)

// Target identifies a widget element: the center or one of the eight options.
type Target string

const TargetCenter Target = "center"

// TargetFor maps a selection index to its element target. Index 0 is the center.
func TargetFor(index int) Target {
	if index == 0 {
		return TargetCenter
	}
	return Target("index-" + strconv.Itoa(index))
}

// Presenter is the view side of the selector. Implementations must tolerate
// targets they cannot resolve.
type Presenter interface {
	// Highlight removes designation from whatever element has it and applies
	// it to target.
	Highlight(designation Designation, target Target)
	Show()
	Hide()
}

type nopPresenter struct{}

func (nopPresenter) Highlight(Designation, Target) {}
func (nopPresenter) Show()                         {}
func (nopPresenter) Hide()                         {}
