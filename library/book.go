// Package library holds the sample data the demonstrations operate on:
// books, publications and a shelf to look them up from.
package library

import (
	"fmt"
	"time"

	"github.com/faultbook/faultbook"
)

// FirstPublished is a placeholder publication date for books created inline
// by demonstrations that don't care about dates.
var FirstPublished = time.Date(1978, time.October, 3, 0, 0, 0, 0, time.UTC)

// Page is a single page of a book.
type Page struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

// Book is the standard demonstration subject.
type Book struct {
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	PageCount int       `json:"page_count"`
	Published time.Time `json:"published,omitempty"`
}

// NewBook creates a book with the given page count.
func NewBook(title, author string, pageCount int, published time.Time) *Book {
	return &Book{
		Title:     title,
		Author:    author,
		PageCount: pageCount,
		Published: published,
	}
}

// Pages materializes the raw page slice. Indexing it directly is unchecked;
// use Page for bounds-checked access.
func (b *Book) Pages() []Page {
	pages := make([]Page, b.PageCount)
	for i := range pages {
		pages[i] = Page{
			Number:  i + 1,
			Content: fmt.Sprintf("Page %d of %q", i+1, b.Title),
		}
	}
	return pages
}

// Page returns the page with the given 1-based number, or a validation fault
// when the number is out of range.
func (b *Book) Page(number int) (Page, error) {
	if number < 1 || number > b.PageCount {
		return Page{}, faultbook.New("page out of range",
			faultbook.ClassValidation, faultbook.CategoryCollections,
			"title", b.Title, "page", number, "max", b.PageCount)
	}
	return Page{
		Number:  number,
		Content: fmt.Sprintf("Page %d of %q", number, b.Title),
	}, nil
}

func (b *Book) String() string {
	return fmt.Sprintf("'%s' by %s (%d pages)", b.Title, b.Author, b.PageCount)
}

// Publication is any publishable form of a book.
type Publication interface {
	Describe() string
}

// PaperbackBook is a physical publication of a book.
type PaperbackBook struct {
	Book
}

// Describe implements Publication.
func (b *PaperbackBook) Describe() string {
	return fmt.Sprintf("%s [paperback]", b.Book.String())
}

// DigitalBook is an electronic publication of a book.
type DigitalBook struct {
	Book
	SizeKB int
}

// Describe implements Publication.
func (b *DigitalBook) Describe() string {
	return fmt.Sprintf("%s [digital, %d KB]", b.Book.String(), b.SizeKB)
}
