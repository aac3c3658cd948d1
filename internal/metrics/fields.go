package metrics

// Attribute keys shared by every instrument.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrDocument = "document"
	AttrOutcome  = "outcome"
)

// Load outcomes reported with AttrOutcome.
const (
	OutcomeReady  = "ready"
	OutcomeFailed = "failed"
	OutcomeStale  = "stale"
)
