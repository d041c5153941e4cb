// Package compose grafts nodes from one document into another.
//
// Imports are deep copies: the appended subtree belongs entirely to the
// destination document and the source tree is left untouched, so the same
// source can be appended into several destinations.
package compose
