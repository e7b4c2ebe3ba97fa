package samples

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
)

func networkDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "connection-refused",
			Topic:    "network",
			Synopsis: "dialing a port that stopped listening",
			Expect:   faultbook.ClassUnavailable,
			Run: func(ctx context.Context) error {
				ln, err := net.Listen("tcp", "127.0.0.1:0")
				if err != nil {
					return faultbook.Wrap(err, "reserve port", faultbook.CategoryNetwork)
				}
				addr := ln.Addr().String()
				if err := ln.Close(); err != nil {
					return faultbook.Wrap(err, "release port", faultbook.CategoryNetwork)
				}

				conn, err := net.Dial("tcp", addr)
				if err != nil {
					return err
				}
				return conn.Close()
			},
		},
		{
			Name:     "dial-context-timeout",
			Topic:    "network",
			Synopsis: "dialing with a context whose deadline already passed",
			Expect:   faultbook.ClassTimeout,
			Run: func(ctx context.Context) error {
				dctx, cancel := context.WithTimeout(ctx, time.Nanosecond)
				defer cancel()
				<-dctx.Done()

				var dialer net.Dialer
				conn, err := dialer.DialContext(dctx, "tcp", "127.0.0.1:9")
				if err != nil {
					return err
				}
				return conn.Close()
			},
		},
		{
			Name:     "read-deadline",
			Topic:    "network",
			Synopsis: "reading from a peer that never writes until the deadline expires",
			Expect:   faultbook.ClassTimeout,
			Run: func(ctx context.Context) error {
				client, server := net.Pipe()
				defer client.Close()
				defer server.Close()

				if err := client.SetReadDeadline(time.Now().Add(50 * time.Millisecond)); err != nil {
					return faultbook.Wrap(err, "set read deadline", faultbook.CategoryNetwork)
				}
				buf := make([]byte, 64)
				_, err := client.Read(buf)
				return err
			},
		},
		{
			Name:     "unknown-host",
			Topic:    "network",
			Synopsis: "resolving a host that does not exist",
			Expect:   faultbook.ClassNotFound,
			Run: func(ctx context.Context) error {
				_, err := net.DefaultResolver.LookupHost(ctx, "bookshelf.faultbook.invalid")
				return err
			},
		},
		{
			Name:     "malformed-url",
			Topic:    "network",
			Synopsis: "parsing a catalog URL with a space in the scheme",
			Expect:   faultbook.ClassValidation,
			Run: func(ctx context.Context) error {
				_, err := url.Parse("ht tp://catalog.example.com/books")
				return err
			},
		},
	}
}
