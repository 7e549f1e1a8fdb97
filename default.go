package glogger

// UseAdapter builds a Logger around a with the given min level and registers
// it as the global logger. When a logger is already registered it returns
// ErrAlreadyInitialized together with the logger that stays active.
func UseAdapter(a Adapter, min Level) (*Logger, error) {
	l, err := NewBuilder().
		WithAdapter(a).
		WithMinLevel(min).
		Build()
	if err != nil {
		return nil, err
	}
	if err := Init(l); err != nil {
		return L(), err
	}
	return l, nil
}
