// Package text assembles the plain reading-order text of a page from its
// positioned fragments.
//
// Fragments are grouped into lines by their vertical position, lines are
// ordered from the top of the page down and fragments within a line from
// left to right. Lines are separated by a single newline, so the first line
// of the result is the topmost text on the page.
package text
