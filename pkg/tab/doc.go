// Package tab provides a clean public API over the binary geometry
// codec for a tabular geospatial dataset's map file: feature
// read/write, the style-definition pool, and the projection-parameter
// record.
//
// Create a handle with NewFileHandle and read or write features
// through it; the text manifest and attribute store are external
// collaborators this package only describes an interface for (see
// ExternalManifest and ExternalAttributeStore).
package tab
