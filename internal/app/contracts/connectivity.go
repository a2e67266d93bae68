package contracts

// ConnectivityOracle exposes the current online/offline status and notifies
// subscribers on transitions only. Implementations default to online when no
// signal has been observed yet.
type ConnectivityOracle interface {
	IsOnline() bool
	OnChange(callback func(online bool))
	Set(online bool)
}
