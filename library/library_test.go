package library_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/library"
)

func TestBookPages(t *testing.T) {
	book := library.NewBook("The Stand", "Stephen King", 3, library.FirstPublished)
	pages := book.Pages()
	require.Len(t, pages, 3)
	assert.Equal(t, 1, pages[0].Number)
	assert.Contains(t, pages[2].Content, "The Stand")
}

func TestBookPageBounds(t *testing.T) {
	book := library.NewBook("Moby Dick", "Herman Melville", 752, library.FirstPublished)

	page, err := book.Page(752)
	require.NoError(t, err)
	assert.Equal(t, 752, page.Number)

	_, err = book.Page(753)
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassValidation, faultbook.Classify(err))

	_, err = book.Page(0)
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassValidation, faultbook.Classify(err))
}

func TestPublications(t *testing.T) {
	book := library.NewBook("Fahrenheit 451", "Ray Bradbury", 256, library.FirstPublished)

	var pub library.Publication = &library.PaperbackBook{Book: *book}
	assert.Contains(t, pub.Describe(), "[paperback]")

	pub = &library.DigitalBook{Book: *book, SizeKB: 812}
	assert.Contains(t, pub.Describe(), "812 KB")
}

func TestShelfAdd(t *testing.T) {
	shelf := library.NewShelf()
	book := library.NewBook("A Game of Thrones", "George R.R. Martin", 694, library.FirstPublished)

	require.NoError(t, shelf.Add(book))
	assert.Equal(t, 1, shelf.Len())

	err := shelf.Add(book)
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassAlreadyExists, faultbook.Classify(err))

	err = shelf.Add(&library.Book{})
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassValidation, faultbook.Classify(err))

	err = shelf.Add(nil)
	require.Error(t, err)
}

func TestShelfFind(t *testing.T) {
	shelf := library.StockShelf()

	book, err := shelf.Find("Moby Dick")
	require.NoError(t, err)
	assert.Equal(t, "Herman Melville", book.Author)

	_, err = shelf.Find("Necronomicon")
	require.Error(t, err)
	assert.Equal(t, faultbook.ClassNotFound, faultbook.Classify(err))

	var fbErr faultbook.Error
	require.True(t, errors.As(err, &fbErr))
	assert.Equal(t, "Necronomicon", faultbook.FieldsToMap(fbErr.Fields())["title"])
}

func TestStockShelf(t *testing.T) {
	shelf := library.StockShelf()
	assert.Equal(t, 4, shelf.Len())
	assert.Equal(t, []string{
		"The Stand", "Moby Dick", "Fahrenheit 451", "A Game of Thrones",
	}, shelf.Titles())
}
