// Package types defines the document, schema version, and tab descriptor
// types shared by the explorer editor state packages, along with the
// standard error values they return.
package types
