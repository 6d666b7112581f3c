package reader

import (
	"bytes"
	"errors"
	"io"
)

// ErrNotPDF is returned when the input does not start with a PDF header.
var ErrNotPDF = errors.New("not a PDF document")

// Format is the kind of document recognised from its leading bytes.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// ZIP indicates a ZIP container such as an Office or OpenDocument file.
	ZIP
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case ZIP:
		return "ZIP"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// sniffLen is how many leading bytes DetectFormat looks at.
const sniffLen = 512

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
)

// DetectFormat checks the magic bytes at the start of ra.
func DetectFormat(ra io.ReaderAt) (Format, error) {
	magic := make([]byte, sniffLen)
	n, err := ra.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFromMagic classifies data by its leading bytes.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return PDF
	case bytes.HasPrefix(data, zipMagic):
		return ZIP
	case looksLikeHTML(data):
		return HTML
	}
	return Unknown
}

func looksLikeHTML(data []byte) bool {
	upper := bytes.ToUpper(bytes.TrimLeft(data, " \t\r\n"))
	return bytes.HasPrefix(upper, []byte("<!DOCTYPE HTML")) || bytes.HasPrefix(upper, []byte("<HTML"))
}

// checkPDF returns ErrNotPDF, naming the detected format, unless ra holds
// a PDF.
func checkPDF(ra io.ReaderAt) error {
	f, err := DetectFormat(ra)
	if err != nil {
		return err
	}
	if f != PDF {
		return &formatError{found: f}
	}
	return nil
}

type formatError struct {
	found Format
}

func (e *formatError) Error() string {
	if e.found == Unknown {
		return ErrNotPDF.Error()
	}
	return ErrNotPDF.Error() + " (looks like " + e.found.String() + ")"
}

func (e *formatError) Is(target error) bool {
	return target == ErrNotPDF
}
