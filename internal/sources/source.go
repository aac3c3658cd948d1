// Package sources fetches the raw dashboard documents.
package sources

import "context"

// Source returns the raw bytes of a named document.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, name string) ([]byte, error)

func (f SourceFunc) Fetch(ctx context.Context, name string) ([]byte, error) {
	return f(ctx, name)
}

// Default document names, relative to the source root.
const (
	TeamDocument               = "team.json"
	TransfersAvailableDocument = "transfer_portal_available_players.json"
	TransfersCommittedDocument = "transfer_portal_already_committed.json"
	InternationalDocument      = "international.json"
	RankingsDocument           = "rsci.json"
)

// Documents names the five documents a load reads.
type Documents struct {
	Team               string
	TransfersAvailable string
	TransfersCommitted string
	International      string
	Rankings           string
}

// DefaultDocuments returns the standard document names.
func DefaultDocuments() Documents {
	return Documents{
		Team:               TeamDocument,
		TransfersAvailable: TransfersAvailableDocument,
		TransfersCommitted: TransfersCommittedDocument,
		International:      InternationalDocument,
		Rankings:           RankingsDocument,
	}
}

// WithDefaults fills any empty name with its default.
func (d Documents) WithDefaults() Documents {
	def := DefaultDocuments()
	if d.Team == "" {
		d.Team = def.Team
	}
	if d.TransfersAvailable == "" {
		d.TransfersAvailable = def.TransfersAvailable
	}
	if d.TransfersCommitted == "" {
		d.TransfersCommitted = def.TransfersCommitted
	}
	if d.International == "" {
		d.International = def.International
	}
	if d.Rankings == "" {
		d.Rankings = def.Rankings
	}
	return d
}

// Names lists the documents in load order.
func (d Documents) Names() []string {
	return []string{d.Team, d.TransfersAvailable, d.TransfersCommitted, d.International, d.Rankings}
}
