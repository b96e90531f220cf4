package core

// Dirty is a redraw flag with a change hook. It is meant to be embedded by
// composition in anything the camera redraws.
type Dirty struct {
	dirty    bool
	onChange func(bool)
}

// NewDirty creates a flag with the given initial value. The hook, if non-nil,
// runs on every actual transition of the flag.
func NewDirty(initial bool, onChange func(bool)) Dirty {
	return Dirty{dirty: initial, onChange: onChange}
}

// IsDirty reports whether a redraw is pending.
func (d *Dirty) IsDirty() bool {
	return d.dirty
}

// SetDirty updates the flag. The hook fires only when the value changes.
func (d *Dirty) SetDirty(v bool) {
	if d.dirty == v {
		return
	}
	d.dirty = v
	if d.onChange != nil {
		d.onChange(v)
	}
}
