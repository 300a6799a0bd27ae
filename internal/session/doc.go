package session

// Package session owns the state of one open mesh document and is the only
// place that mutates it. The UI calls Session methods from its event thread;
// renderers and exporters work on immutable RenderSnapshot values taken from
// it, so they can run on any goroutine.
