// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is one archived dataset entry as returned by the Zenodo records
// listing. Records are immutable once fetched; they live only for the
// duration of a run.
type Record struct {
	// ID is the numeric Zenodo record identifier.
	ID int `json:"id"`

	// DOI is the record-level DOI, when minted.
	DOI string `json:"doi,omitempty"`

	// Metadata holds the descriptive fields of the record.
	Metadata RecordMetadata `json:"metadata"`

	// Files lists the attached artifacts in listing order.
	Files []RecordFile `json:"files"`
}

// Title returns the record title, or a placeholder when the metadata
// carries none.
func (r Record) Title() string {
	if r.Metadata.Title == "" {
		return "Unknown Title"
	}
	return r.Metadata.Title
}

// RecordMetadata holds the descriptive subset of a record used by the
// mirror and the metadata index.
type RecordMetadata struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Creators        []Creator `json:"creators"`
	PublicationDate string    `json:"publication_date"`
	DOI             string    `json:"doi,omitempty"`
}

// Creator is one author or contributor of a record, in source order.
type Creator struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	ORCID       string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
}

// RecordFile is a single attached artifact belonging to a record.
type RecordFile struct {
	// Key is the filename under which the artifact is stored.
	Key string `json:"key"`

	// Size is the remote-reported byte count. Local size equality with
	// this value is the sole already-downloaded check.
	Size int64 `json:"size"`

	// Links carries the self URL used for the authorized download.
	Links FileLinks `json:"links"`
}

// FileLinks holds the hypermedia links of a file entry.
type FileLinks struct {
	Self string `json:"self"`
}

// RecordSummary is the projection of a record written to the metadata
// index. Download URLs are deliberately omitted.
type RecordSummary struct {
	ID              int           `json:"id" yaml:"id"`
	Title           string        `json:"title" yaml:"title"`
	Description     string        `json:"description" yaml:"description"`
	Creators        []Creator     `json:"creators" yaml:"creators"`
	PublicationDate string        `json:"publication_date" yaml:"publication_date"`
	DOI             string        `json:"doi,omitempty" yaml:"doi,omitempty"`
	Files           []FileSummary `json:"files" yaml:"files"`
}

// FileSummary is the {filename, size} pair kept per file in the index.
type FileSummary struct {
	Key  string `json:"key" yaml:"key"`
	Size int64  `json:"size" yaml:"size"`
}
