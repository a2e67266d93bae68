package connectivity

import (
	"medassist-service/internal/app/contracts"
	"sync"
)

// oracle holds the current online/offline status. It starts online so the
// primary path is never blocked before any signal has been observed, and it
// notifies subscribers on transitions only, never on repeated reports of the
// same state. Callbacks run outside the lock.
type oracle struct {
	mu        sync.RWMutex
	online    bool
	callbacks []func(online bool)
}

func NewConnectivityOracle() contracts.ConnectivityOracle {
	return &oracle{online: true}
}

func (o *oracle) IsOnline() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.online
}

func (o *oracle) OnChange(callback func(online bool)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.callbacks = append(o.callbacks, callback)
}

func (o *oracle) Set(online bool) {
	o.mu.Lock()
	if o.online == online {
		o.mu.Unlock()
		return
	}
	o.online = online
	callbacks := make([]func(bool), len(o.callbacks))
	copy(callbacks, o.callbacks)
	o.mu.Unlock()

	for _, callback := range callbacks {
		callback(online)
	}
}
