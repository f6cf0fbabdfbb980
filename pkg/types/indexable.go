// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Indexable is one stored page: the text and metadata a Paper is built
// from, keyed by a stable ID. Analysis results are never stored with it.
type Indexable struct {
	// ID is the stable key (file slug or URL).
	ID string `json:"id" yaml:"id"`

	// Source is the file path or URL the page was loaded from.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Text is the page body, possibly HTML.
	Text string `json:"text" yaml:"text"`

	// Attributes holds the paper metadata.
	Attributes PaperAttributes `json:"attributes" yaml:"attributes"`

	// ContentHash fingerprints Text and Attributes. The store fills it in.
	ContentHash string `json:"content_hash,omitempty" yaml:"content_hash,omitempty"`

	// UpdatedAt is when the row was last written. The store fills it in.
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Paper builds the analyzable paper of the indexable.
func (ix Indexable) Paper() *Paper {
	return NewPaper(ix.Text, ix.Attributes)
}
