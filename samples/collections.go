package samples

import (
	"context"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
	"github.com/faultbook/faultbook/library"
)

func collectionDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "slice-index-out-of-range",
			Topic:    "collections",
			Synopsis: "indexing a page slice beyond its length panics",
			Expect:   faultbook.ClassPanic,
			Run: func(ctx context.Context) error {
				book := library.NewBook("The Stand", "Stephen King", 3, library.FirstPublished)
				pages := book.Pages()
				// One past the end; the index is computed so the compiler
				// cannot reject it.
				_ = pages[book.PageCount+1]
				return nil
			},
		},
		{
			Name:     "safe-page-lookup",
			Topic:    "collections",
			Synopsis: "the bounds-checked accessor returns a validation fault instead of panicking",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				book := library.NewBook("The Stand", "Stephen King", 488, library.FirstPublished)
				_, err := book.Page(600)
				return err
			},
		},
		{
			Name:     "map-missing-key",
			Topic:    "collections",
			Synopsis: "looking up a title that is not on the shelf",
			Expect:   faultbook.ClassNotFound,
			Run: func(ctx context.Context) error {
				shelf := library.StockShelf()
				_, err := shelf.Find("The Wind-Up Bird Chronicle")
				return err
			},
		},
		{
			Name:     "nil-map-write",
			Topic:    "collections",
			Synopsis: "assigning to an entry in a nil map panics",
			Expect:   faultbook.ClassPanic,
			Run: func(ctx context.Context) error {
				var index map[string]*library.Book
				index["The Stand"] = library.NewBook("The Stand", "Stephen King", 1153, library.FirstPublished)
				return nil
			},
		},
		{
			Name:     "type-assertion",
			Topic:    "collections",
			Synopsis: "asserting a digital publication to a paperback panics",
			Expect:   faultbook.ClassPanic,
			Run: func(ctx context.Context) error {
				var pub library.Publication = &library.DigitalBook{
					Book:   *library.NewBook("Moby Dick", "Herman Melville", 752, library.FirstPublished),
					SizeKB: 1270,
				}
				paperback := pub.(*library.PaperbackBook)
				_ = paperback.Describe()
				return nil
			},
		},
	}
}
