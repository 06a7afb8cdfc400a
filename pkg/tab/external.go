package tab

// ExternalManifest is the text-manifest tokenizer and schema loader's
// interface to this package. The manifest itself — version, character
// set, attribute-field schema — is out of scope; this package only
// describes what it needs back from it.
type ExternalManifest interface {
	// Schema returns the ordered attribute-field definitions the
	// manifest declares. An empty slice with a non-nil error of kind
	// *ErrInvalidManifest means the manifest returned no schema.
	Schema() ([]FieldDef, error)

	// CharacterSet names the manifest's declared text encoding, used
	// to interpret TEXT feature string bytes.
	CharacterSet() string
}

// FieldDef describes one fixed-width attribute field, as the external
// manifest collaborator declares it.
type FieldDef struct {
	Name  string
	Type  string
	Width int
}

// ExternalAttributeStore is the fixed-width attribute-record
// reader/writer's interface to this package. Row I/O itself is out of
// scope; this package only reads and writes whole rows by feature
// index.
type ExternalAttributeStore interface {
	// ReadRow returns the raw field values for the feature at index i.
	ReadRow(i int) (map[string]any, error)

	// WriteRow writes the raw field values for the feature at index i.
	// Character fields longer than their declared width are truncated
	// with no error; all other overflow is an error.
	WriteRow(i int, values map[string]any) error

	// RowCount reports how many attribute rows currently exist.
	RowCount() int
}
