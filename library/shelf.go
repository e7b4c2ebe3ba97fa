package library

import (
	"time"

	"github.com/faultbook/faultbook"
)

// Shelf is a title-keyed collection of books.
type Shelf struct {
	books map[string]*Book
	order []string
}

// NewShelf creates an empty shelf.
func NewShelf() *Shelf {
	return &Shelf{books: make(map[string]*Book)}
}

// Add puts a book on the shelf. Adding a title twice is a conflict.
func (s *Shelf) Add(book *Book) error {
	if book == nil || book.Title == "" {
		return faultbook.New("book must have a title",
			faultbook.ClassValidation, faultbook.CategoryCollections)
	}
	if _, ok := s.books[book.Title]; ok {
		return faultbook.New("book already on shelf",
			faultbook.ClassAlreadyExists, faultbook.CategoryCollections,
			"title", book.Title)
	}
	s.books[book.Title] = book
	s.order = append(s.order, book.Title)
	return nil
}

// Find returns the book with the given title, or a not_found fault.
func (s *Shelf) Find(title string) (*Book, error) {
	book, ok := s.books[title]
	if !ok {
		return nil, faultbook.NotFoundError.New("book",
			faultbook.CategoryCollections, "title", title)
	}
	return book, nil
}

// Titles returns the shelved titles in insertion order.
func (s *Shelf) Titles() []string {
	titles := make([]string, len(s.order))
	copy(titles, s.order)
	return titles
}

// Len returns the number of shelved books.
func (s *Shelf) Len() int {
	return len(s.books)
}

// StockShelf returns a shelf with the standard demonstration books.
func StockShelf() *Shelf {
	shelf := NewShelf()
	for _, book := range []*Book{
		NewBook("The Stand", "Stephen King", 1153, date(1978, 10, 3)),
		NewBook("Moby Dick", "Herman Melville", 752, date(1851, 10, 18)),
		NewBook("Fahrenheit 451", "Ray Bradbury", 256, date(1953, 10, 19)),
		NewBook("A Game of Thrones", "George R.R. Martin", 694, date(1996, 8, 1)),
	} {
		// Titles are unique by construction.
		_ = shelf.Add(book)
	}
	return shelf
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
