package widgets

// Action is the primary button shown by the navigation bar
type Action string

const (
	ActionNext   Action = "next"
	ActionFinish Action = "finish"
)

// Navigation is the previous/next/finish control. CanFinish comes from the
// caller, typically "every question answered".
type Navigation struct {
	Current   int
	Total     int
	CanFinish bool

	OnPrevious func()
	OnNext     func()
	OnFinish   func()
}

func (n Navigation) PreviousDisabled() bool {
	return n.Current <= 0
}

func (n Navigation) IsLast() bool {
	return n.Total > 0 && n.Current >= n.Total-1
}

// PrimaryAction is Finish on the last question and Next everywhere else.
func (n Navigation) PrimaryAction() Action {
	if n.IsLast() {
		return ActionFinish
	}
	return ActionNext
}

func (n Navigation) FinishEnabled() bool {
	return n.IsLast() && n.CanFinish
}

// Previous, Next and Finish fire their callback when the button is enabled
// and report whether it fired.
func (n Navigation) Previous() bool {
	if n.PreviousDisabled() {
		return false
	}
	return fire(n.OnPrevious)
}

func (n Navigation) Next() bool {
	if n.Current >= n.Total-1 {
		return false
	}
	return fire(n.OnNext)
}

func (n Navigation) Finish() bool {
	if !n.FinishEnabled() {
		return false
	}
	return fire(n.OnFinish)
}

func fire(fn func()) bool {
	if fn == nil {
		return false
	}
	fn()
	return true
}
