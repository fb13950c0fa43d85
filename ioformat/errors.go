package ioformat

import "errors"

// ErrFileNotReadable indicates the input file could not be opened. Per
// §9 open question 1, this is treated as fatal rather than continuing
// with an empty graph.
var ErrFileNotReadable = errors.New("ioformat: input file not readable")

// ErrEmptyFile indicates the file has no delay line to parse N from.
var ErrEmptyFile = errors.New("ioformat: file has no delay line")

// ErrMalformedLine indicates a line could not be parsed as the
// expected number of whitespace-delimited integers.
var ErrMalformedLine = errors.New("ioformat: malformed line")
