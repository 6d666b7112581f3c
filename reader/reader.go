package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/shiftsheet/model"
)

// US Letter, used when a page carries no usable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// ErrPageOutOfRange is returned by [Reader.Page] for page numbers that do
// not exist in the document.
var ErrPageOutOfRange = errors.New("page out of range")

// Reader represents an open PDF document.
type Reader struct {
	file *os.File
	doc  *pdf.Reader
	opts Options
}

// Open opens the PDF file at path.
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	r, err := NewReader(f, info.Size(), opts...)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	r.file = f
	return r, nil
}

// NewReader reads a PDF document from ra, which holds size bytes.
func NewReader(ra io.ReaderAt, size int64, opts ...Option) (r *Reader, err error) {
	if err := checkPDF(ra); err != nil {
		return nil, err
	}
	defer recoverInto(&err)

	doc, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}
	r = &Reader{doc: doc, opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r, nil
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.doc.NumPage()
}

// Page decodes page n (1-indexed).
func (r *Reader) Page(n int) (page *model.Page, err error) {
	if n < 1 || n > r.PageCount() {
		return nil, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, n, r.PageCount())
	}
	defer recoverInto(&err)

	p := r.doc.Page(n)
	if p.V.IsNull() {
		return nil, fmt.Errorf("page %d: missing page object", n)
	}

	width, height := mediaBox(p)
	page = model.NewPage(n, width, height)

	content := p.Content()
	for _, frag := range MergeGlyphs(content.Text, r.opts) {
		page.AddFragment(frag)
	}
	for _, line := range RectLines(content.Rect, r.opts.RuleThickness) {
		page.AddLine(line)
	}
	return page, nil
}

// mediaBox reads the page's MediaBox, which may be inherited from any
// ancestor in the page tree.
func mediaBox(p pdf.Page) (width, height float64) {
	var box pdf.Value
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		if b := v.Key("MediaBox"); !b.IsNull() {
			box = b
			break
		}
	}
	if box.Kind() != pdf.Array || box.Len() < 4 {
		return defaultPageWidth, defaultPageHeight
	}
	width = box.Index(2).Float64() - box.Index(0).Float64()
	height = box.Index(3).Float64() - box.Index(1).Float64()
	if width <= 0 || height <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return width, height
}

// recoverInto turns a panic raised while decoding into an error.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok {
			*err = fmt.Errorf("malformed PDF: %w", e)
			return
		}
		*err = fmt.Errorf("malformed PDF: %v", r)
	}
}
