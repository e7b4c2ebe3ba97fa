package samples

import (
	"context"
	"strconv"
	"time"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
	"github.com/faultbook/faultbook/library"
)

func conversionDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "atoi-syntax",
			Topic:    "conversion",
			Synopsis: "parsing a page count that is not a number",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				_, err := strconv.Atoi("four hundred eighty-eight")
				return err
			},
		},
		{
			Name:     "parse-int-range",
			Topic:    "conversion",
			Synopsis: "parsing a number one past the int64 maximum",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				_, err := strconv.ParseInt("9223372036854775808", 10, 64)
				return err
			},
		},
		{
			Name:     "time-parse",
			Topic:    "conversion",
			Synopsis: "parsing a publication date in the wrong layout",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				_, err := time.Parse(time.RFC3339, "October 3rd, 1978")
				return err
			},
		},
		{
			Name:     "divide-by-zero",
			Topic:    "conversion",
			Synopsis: "computing pages per chapter of a book with no chapters panics",
			Expect:   faultbook.ClassPanic,
			Run: func(ctx context.Context) error {
				book := library.NewBook("Fahrenheit 451", "Ray Bradbury", 256, library.FirstPublished)
				chapters := make([]string, 0)
				_ = book.PageCount / len(chapters)
				return nil
			},
		},
	}
}
