package schedule

// TextExtractor returns the raw text of page 1 of the document at path.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// TableExtractor returns the single table detected on page 1 of the document
// at path.
type TableExtractor interface {
	ExtractTable(path string) (*RawTable, error)
}

// TextExtractorFunc adapts a function to TextExtractor.
type TextExtractorFunc func(path string) (string, error)

// ExtractText calls f(path).
func (f TextExtractorFunc) ExtractText(path string) (string, error) {
	return f(path)
}

// TableExtractorFunc adapts a function to TableExtractor.
type TableExtractorFunc func(path string) (*RawTable, error)

// ExtractTable calls f(path).
func (f TableExtractorFunc) ExtractTable(path string) (*RawTable, error) {
	return f(path)
}

// WarningSource is implemented by extractors that collect non-fatal issues
// while extracting. The session merges them into its own warnings.
type WarningSource interface {
	Warnings() []Warning
}
