package behavior

import "fmt"

// Info describes a behavior's identity and intent.
type Info struct {
	ID          string
	Name        string
	Description string
	Version     string
}

// Validate ensures the info block is well-formed.
func (i Info) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("behavior: id is required")
	}
	if i.Name == "" {
		return fmt.Errorf("behavior: name is required for %s", i.ID)
	}
	if i.Version == "" {
		return fmt.Errorf("behavior: version is required for %s", i.ID)
	}
	return nil
}

// Behavior is one self-contained page enhancement. Attach runs once on page
// ready and reports whether the behavior found the markup it needs; inactive
// behaviors receive no events. HandleEvent runs to completion on the update
// loop, so no behavior ever races another.
type Behavior interface {
	Info() Info
	Attach(ctx *Context) (bool, error)
	HandleEvent(ctx *Context, ev Event) error
}

// Animator is implemented by behaviors that drive per-frame animations. The
// program keeps frame events flowing while any attached animator reports
// true.
type Animator interface {
	Animating() bool
}
