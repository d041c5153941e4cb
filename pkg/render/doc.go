// Package render serializes etree documents to indented XML text.
//
// Output always starts with an explicit XML declaration line followed by a
// 4-space-indented body. Elements whose tag name is listed in
// Options.CDATAElements have their text emitted inside CDATA sections, so
// markup-heavy content survives a round trip without entity escaping.
//
// Rendering failures are returned as errors wrapping ErrRender; nothing is
// logged and swallowed.
package render
