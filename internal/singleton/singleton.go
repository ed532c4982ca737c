package singleton

import "sync"

// Settings holds process-wide configuration. The zero value is not used;
// construct via NewSettings or share the Default instance.
type Settings struct {
	AppName string
	Verbose bool
}

// NewSettings returns an independent Settings, for code that injects its
// configuration instead of sharing the global one.
func NewSettings(appName string) *Settings {
	return &Settings{AppName: appName}
}

var (
	defaultOnce sync.Once
	defaultInst *Settings
)

// Default returns the shared Settings, creating it on first access. Every
// caller in the process sees the same instance.
func Default() *Settings {
	defaultOnce.Do(func() {
		defaultInst = NewSettings("gopatterns")
	})
	return defaultInst
}
