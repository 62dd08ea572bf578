package news

// LoadState is the status of the most recent fetch.
// It is one of Loading, Loaded or Failed.
type LoadState interface {
	loadState()
}

// Loading means a fetch is in flight.
type Loading struct{}

// Loaded means the last fetch succeeded.
type Loaded struct{}

// Failed means the last fetch returned an error.
type Failed struct {
	Message string
}

func (Loading) loadState() {}
func (Loaded) loadState()  {}
func (Failed) loadState()  {}
