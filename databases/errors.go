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
)

// This error type is returned when a database is sought but not found.
type NotFoundError struct {
	Database string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("The database '%s' was not found", e.Database)
}

// indicates that a database is already registered and an attempt has been made
// to register it again
type AlreadyRegisteredError struct {
	Database string
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("Cannot register database '%s': already registered", e.Database)
}

// indicates that a request to a database was refused for lack of valid
// credentials
type UnauthorizedError struct {
	Database, Message string
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("Unable to authorize request for database '%s': %s", e.Database, e.Message)
}

// indicates that a database exists but is currently unavailable
type UnavailableError struct {
	Database string
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("Cannot reach database '%s': unavailable", e.Database)
}

// this error type is returned when a workspace table is requested and is not
// found
type TableNotFoundError struct {
	Database, Workspace, Table string
}

func (e TableNotFoundError) Error() string {
	return fmt.Sprintf("Can't access table '%s' in workspace '%s' of database '%s': not found",
		e.Table, e.Workspace, e.Database)
}

// this error type is returned when a database responds with a status code that
// has no more specific error
type UnexpectedStatusError struct {
	Database   string
	StatusCode int
}

func (e UnexpectedStatusError) Error() string {
	return fmt.Sprintf("An error occurred with the %s database (%d)", e.Database, e.StatusCode)
}

// this error type is emitted if an endpoint redirects an HTTPS request to an
// HTTP endpoint (it's NUTS that this can happen!)
type DowngradedRedirectError struct {
	Endpoint string
}

func (e DowngradedRedirectError) Error() string {
	return fmt.Sprintf("The endpoint %s is attempting to downgrade an HTTPS request to HTTP",
		e.Endpoint)
}
