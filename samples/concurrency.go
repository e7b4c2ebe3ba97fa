package samples

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
	"github.com/faultbook/faultbook/library"
)

func concurrencyDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "send-on-closed-channel",
			Topic:    "concurrency",
			Synopsis: "sending a book into a channel that was already closed panics",
			Expect:   faultbook.ClassPanic,
			Run: func(ctx context.Context) error {
				returns := make(chan *library.Book, 1)
				close(returns)
				returns <- library.NewBook("Moby Dick", "Herman Melville", 752, library.FirstPublished)
				return nil
			},
		},
		{
			Name:     "wait-deadline",
			Topic:    "concurrency",
			Synopsis: "waiting for a delivery that never arrives until the deadline expires",
			Expect:   faultbook.ClassTimeout,
			Run: func(ctx context.Context) error {
				wctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
				defer cancel()

				delivery := make(chan *library.Book)
				select {
				case <-delivery:
					return nil
				case <-wctx.Done():
					return wctx.Err()
				}
			},
		},
		{
			Name:     "group-first-failure",
			Topic:    "concurrency",
			Synopsis: "one worker fails validation and cancels the rest of the group",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				g, gctx := errgroup.WithContext(ctx)
				g.Go(func() error {
					book := library.NewBook("A Game of Thrones", "George R.R. Martin", 694, library.FirstPublished)
					_, err := book.Page(-1)
					return err
				})
				g.Go(func() error {
					<-gctx.Done()
					return gctx.Err()
				})
				return g.Wait()
			},
		},
	}
}
