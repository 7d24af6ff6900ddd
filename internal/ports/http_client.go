package ports

import "net/http"

// HTTPClient sends the table API requests. *http.Client satisfies it; tests
// and embedders may substitute their own transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
