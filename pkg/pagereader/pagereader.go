package pagereader

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Reader answers text queries against one already retrieved page.
type Reader interface {
	// FieldText returns the text of the first element matching selector.
	FieldText(selector string) (string, bool)
	// Rows returns the rows of the table body matching tableSelector.
	Rows(tableSelector string) []Row
	// HeaderText returns the text of the row's header cell.
	HeaderText(row Row) string
	// CellText returns the text of the row's index-th data cell.
	CellText(row Row, index int) (string, bool)
	// ListItems returns the texts of every item inside the last list
	// matching selector, nested ones included, in document order.
	ListItems(selector string) ([]string, bool)
}

// Row is an opaque handle on a table row.
type Row interface {
	row()
}

// Document is a Reader over a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

type htmlRow struct {
	sel *goquery.Selection
}

func (htmlRow) row() {}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

func (d *Document) FieldText(selector string) (string, bool) {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(sel.Text()), true
}

func (d *Document) Rows(tableSelector string) []Row {
	var rows []Row
	d.doc.Find(tableSelector).First().Find("tbody > tr").Each(func(_ int, s *goquery.Selection) {
		rows = append(rows, htmlRow{sel: s})
	})
	return rows
}

func (d *Document) HeaderText(row Row) string {
	r, ok := row.(htmlRow)
	if !ok {
		return ""
	}
	return strings.TrimSpace(r.sel.Find("th").First().Text())
}

func (d *Document) CellText(row Row, index int) (string, bool) {
	r, ok := row.(htmlRow)
	if !ok {
		return "", false
	}
	cells := r.sel.Find("td")
	if index < 0 || index >= cells.Length() {
		return "", false
	}
	return strings.TrimSpace(cells.Eq(index).Text()), true
}

func (d *Document) ListItems(selector string) ([]string, bool) {
	list := d.doc.Find(selector).Last()
	if list.Length() == 0 {
		return nil, false
	}
	items := []string{}
	list.Find("li").Each(func(_ int, s *goquery.Selection) {
		items = append(items, strings.TrimSpace(s.Text()))
	})
	return items, true
}

// Links returns the href of every element matching selector, in document
// order, skipping elements without one.
func (d *Document) Links(selector string) []string {
	var links []string
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			links = append(links, href)
		}
	})
	return links
}
