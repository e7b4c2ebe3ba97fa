package samples

import (
	"context"
	"encoding/json"
	"text/template"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
	"github.com/faultbook/faultbook/library"
)

func encodingDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "json-syntax",
			Topic:    "encoding",
			Synopsis: "unmarshalling a book record with a dangling comma",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				var book library.Book
				return json.Unmarshal([]byte(`{"title": "The Stand",`), &book)
			},
		},
		{
			Name:     "json-type-mismatch",
			Topic:    "encoding",
			Synopsis: "unmarshalling a numeric title into a string field",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				var book library.Book
				return json.Unmarshal([]byte(`{"title": 1153}`), &book)
			},
		},
		{
			Name:     "template-parse",
			Topic:    "encoding",
			Synopsis: "an unclosed template action fails to parse; the raw error carries no class and is wrapped by hand",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				_, err := template.New("book").Parse("{{.Title")
				return faultbook.Wrap(err, "parse book template",
					faultbook.ClassValidation, faultbook.CategoryEncoding)
			},
		},
	}
}
