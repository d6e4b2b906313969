package domain

// ExtractKind distinguishes why an extraction produced the text it did.
// Callers can tell "nothing to do" apart from "fetch failed" instead of
// collapsing both into an empty string.
type ExtractKind int

// Extraction outcomes.
const (
	// ExtractOK means text was produced (possibly empty, for an empty file).
	ExtractOK ExtractKind = iota

	// ExtractNoDecoder means the format is recognised but no decoder is
	// available. Terminal, not an error.
	ExtractNoDecoder

	// ExtractCorrupt means the container was fetched but failed to parse.
	ExtractCorrupt

	// ExtractFetchFailed means the provider call itself failed.
	ExtractFetchFailed
)

// String returns a short label for logging.
func (k ExtractKind) String() string {
	switch k {
	case ExtractOK:
		return "ok"
	case ExtractNoDecoder:
		return "no-decoder"
	case ExtractCorrupt:
		return "corrupt-container"
	default:
		return "fetch-failed"
	}
}

// ExtractionResult is the outcome of pulling plain text out of a file.
// An empty Text with Kind ExtractOK or ExtractNoDecoder is a valid
// terminal result, not an error.
type ExtractionResult struct {
	Text string
	Kind ExtractKind
}

// Usable reports whether the result carries text worth embedding.
func (r ExtractionResult) Usable() bool {
	return r.Kind == ExtractOK && r.Text != ""
}

// Size returns the text length in bytes, for logging.
func (r ExtractionResult) Size() int {
	return len(r.Text)
}

// IngestedDocument is the record handed to the vector store. All fields
// are required at insert time; the store contract tolerates no partial
// records.
type IngestedDocument struct {
	Content    string
	Embedding  []float32
	FileID     string
	UserName   string
	UserEmail  string
	CreateDate string
}

// Valid reports whether the document satisfies the store contract.
func (d *IngestedDocument) Valid() bool {
	return d != nil &&
		d.Content != "" &&
		len(d.Embedding) > 0 &&
		d.FileID != "" &&
		d.UserName != "" &&
		d.UserEmail != "" &&
		d.CreateDate != ""
}

// DeadLetter records a change whose downstream hand-off failed after the
// cursor had to move forward anyway. It exists so a change marked
// processed is never silently lost.
type DeadLetter struct {
	ID        string
	FileID    string
	MimeType  string
	Reason    string
	Detail    string
	CreatedAt string
}
