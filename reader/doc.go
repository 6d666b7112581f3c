// Package reader opens PDF files and turns each page into a [model.Page]:
// positioned word fragments plus the ruling lines drawn on the page.
//
// Glyph decoding is delegated to github.com/ledongthuc/pdf. The reader's job
// is to regroup the per-glyph output of that library into words and phrases
// that table detection can place into cells:
//
//	r, err := reader.Open("schedule.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	page, err := r.Page(1)
//
// Pages are numbered from 1. Malformed content streams that make the
// underlying decoder panic are reported as errors instead.
package reader
