// Package snapshot reads flat nested-set record lists from local files and
// blob storage and builds trees from them.
//
// Snapshots are CBOR encoded when written by a service and may be YAML when
// written by hand. Blob snapshots live at
//
//	v1/nestedsets/tree/{uuid}/snapshot.cbor
//
// A Loader takes any Source and returns the built tree, recording a span and
// load metrics through the global OpenTelemetry providers.
package snapshot
