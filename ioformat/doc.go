// Package ioformat reads and writes the plain-text graph file format of
// §6.1/§6.2: a first line of N whitespace-delimited vertex delays,
// followed by one edge per line (tail head, or tail head weight — the
// second line's token count fixes the format for the whole file).
//
// This is the one place in the repo that reaches for bufio/strconv
// instead of a pack library: no example repo's config parser
// (koanf/yaml, used by cmd/retime's config loading) targets this kind of ad hoc,
// line-oriented numeric format, so there is no ecosystem library to
// ground it on — see DESIGN.md.
package ioformat
