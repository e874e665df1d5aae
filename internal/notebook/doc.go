// Package notebook implements the in-memory model of Jupyter notebook
// (.ipynb) documents.
//
// A Notebook is an ordered list of cells plus metadata and a format version.
// Cells and outputs are closed variants:
//
//   - Cell: *CodeCell, *MarkdownCell or *RawCell
//   - Output: *StreamOutput, *ExecuteResult, *DisplayData or *ErrorOutput
//
// Consumers switch on the concrete type; the unexported marker methods keep
// the sets closed to this package.
//
// # Round-trip fidelity
//
// Fields the model does not interpret (cell ids, attachments, extension
// metadata, unknown top-level keys) are kept as opaque Values and written back
// unchanged. Serialize produces the canonical nbformat layout: keys sorted,
// one-space indentation, one array element per line, trailing newline.
package notebook
