// Package cli implements the xmlsmith command-line interface.
//
// Commands:
//
//	xmlsmith fmt [patterns...]           reformat XML files
//	xmlsmith query FILE XPATH            evaluate an XPath against a file
//	xmlsmith merge PARENT XPATH CHILD    graft one file into another
//	xmlsmith version                     print version information
//
// Each command lives in its own file and attaches itself to the root
// command in an init function.
package cli
