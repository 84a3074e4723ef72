package store

import "sync"

// Provider is the key→string blob backend a Store persists through. Get
// reports whether the key was present; a Provider never interprets the
// value.
type Provider interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryProvider is an in-process Provider. It backs tests and the
// --storage=memory mode, where collections live only for the process.
type MemoryProvider struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty MemoryProvider.
func NewMemory() *MemoryProvider {
	return &MemoryProvider{data: make(map[string]string)}
}

func (p *MemoryProvider) Get(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.data[key]
	return v, ok
}

func (p *MemoryProvider) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data[key] = value
	return nil
}
