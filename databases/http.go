// Copyright (c) 2023 The KBase Project and its Contributors
// Copyright (c) 2023 Cohere Consulting, LLC
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package databases

import (
	"fmt"
	"net/http"
	"time"

	"github.com/StalkR/hsts"
	"golang.org/x/oauth2"
)

// Returns an HTTP client for a remote table service. Requests give up after
// the given timeout and follow HTTP Strict Transport Security. If a token
// source is given, every request carries a bearer token from it. Redirects
// are never followed, and a redirect to plain http is an error.
func SecureHttpClient(timeout time.Duration, source oauth2.TokenSource) http.Client {
	var transport http.RoundTripper = hsts.New(http.DefaultTransport)
	if source != nil {
		transport = &oauth2.Transport{
			Source: source,
			Base:   transport,
		}
	}
	return http.Client{
		Timeout:       timeout,
		Transport:     transport,
		CheckRedirect: checkRedirect,
	}
}

// refuses downgrades to plain http and hands other redirects back to the
// caller
func checkRedirect(req *http.Request, via []*http.Request) error {
	if req.URL.Scheme == "http" {
		return &DowngradedRedirectError{
			Endpoint: fmt.Sprintf("%s%s", req.URL.Host, req.URL.Path),
		}
	}
	return http.ErrUseLastResponse
}
