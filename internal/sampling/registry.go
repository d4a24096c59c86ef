package sampling

import (
	"fmt"
	"sync"
)

// CapabilityName is the name reported when sampling is unavailable.
const CapabilityName = "sampling"

// Provider supplies seeded random sources. Exactly one provider is
// registered when sampling support is compiled in.
type Provider interface {
	Name() string
	NewSource(seed int64) RandomSource
}

// CapabilityUnavailableError is returned by every sampling entry point when
// no provider was compiled in.
type CapabilityUnavailableError struct {
	Capability string
	Hint       string
}

func (e *CapabilityUnavailableError) Error() string {
	return fmt.Sprintf("%s capability unavailable: %s", e.Capability, e.Hint)
}

var (
	mu      sync.RWMutex
	current Provider
)

// Register installs p as the active provider.
func Register(p Provider) {
	mu.Lock()
	defer mu.Unlock()
	current = p
}

// Swap installs p (which may be nil) and returns the previous provider.
func Swap(p Provider) Provider {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = p
	return prev
}

// Current returns the active provider, or CapabilityUnavailableError.
func Current() (Provider, error) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return nil, &CapabilityUnavailableError{
			Capability: CapabilityName,
			Hint:       "typegen was built with the nosampling tag; rebuild without -tags nosampling to enable sample generation",
		}
	}
	return current, nil
}

// Ensure reports whether sampling is available.
func Ensure() error {
	_, err := Current()
	return err
}

// NewSource returns a seeded source from the active provider.
func NewSource(seed int64) (RandomSource, error) {
	p, err := Current()
	if err != nil {
		return nil, err
	}
	return p.NewSource(seed), nil
}
