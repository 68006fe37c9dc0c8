// Package gerrit is a typed client for the Gerrit Code Review REST API.
//
// Requests go through two layers. The transport layer ([HTTPTransport])
// owns the connection settings (base URL, port, credentials, TLS) and
// performs exactly one HTTP request per call. The REST layer ([REST])
// encodes JSON bodies, checks the status code against the one the endpoint
// documents and hands back a [Message]. Gerrit prefixes every JSON body
// with the literal ")]}'\n"; [Message.JSON] refuses bodies without it.
//
// [Client] exposes the endpoints as methods:
//
//	c, err := gerrit.NewClient("https://review.example.com",
//		gerrit.WithCredentials("jdoe", "http-password"))
//	if err != nil {
//		return err
//	}
//	topic, err := c.GetTopic(ctx, "myProject~master~I8473b95934b5732ac55d26311a706c9c2bde9940")
//
// Failures are reported with the sentinel errors in errors.go and can be
// matched with [errors.Is]. A status mismatch also matches the sentinel of
// the status class, so a 409 answer satisfies both
// errors.Is(err, ErrUnexpectedHTTPResponse) and errors.Is(err, ErrConflict).
// Nothing is retried.
package gerrit
