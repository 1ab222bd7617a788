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

package terra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/gregor-consortium/triovcf/config"
	"github.com/gregor-consortium/triovcf/core"
	"github.com/gregor-consortium/triovcf/databases"
)

// OAuth scopes requested for Terra API access with application default
// credentials
var scopes = []string{
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

// data table service backed by the Terra (FireCloud) orchestration API
// (implements the databases.Database interface)
type Database struct {
	// HTTP client that attaches credentials to requests
	Client http.Client
	// base URL of the orchestration API
	BaseURL string
}

func NewDatabase() (databases.Database, error) {
	// authentication is left to the transport: if we can't find credentials,
	// requests go out without them and Terra refuses them
	source, err := tokenSource()
	if err != nil {
		slog.Debug(fmt.Sprintf("No Terra credentials found: %s", err.Error()))
	}

	return &Database{
		Client:  databases.SecureHttpClient(time.Duration(config.Terra.Timeout)*time.Second, source),
		BaseURL: config.Terra.URL,
	}, nil
}

func (db *Database) Entities(workspace core.Workspace, table string) []core.Entity {
	entities, err := db.entities(workspace, table)
	if err != nil {
		slog.Debug(fmt.Sprintf("Couldn't fetch %s from %s: %s", table, workspace.String(), err.Error()))
		return []core.Entity{}
	}
	return entities
}

//-----------
// Internals
//-----------

// returns a static source for an access token given in the environment, or
// a source for application default credentials otherwise
func tokenSource() (oauth2.TokenSource, error) {
	if config.Env.AccessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: config.Env.AccessToken,
			TokenType:   "Bearer",
		}), nil
	}
	return google.DefaultTokenSource(context.Background(), scopes...)
}

func (db Database) entities(workspace core.Workspace, table string) ([]core.Entity, error) {
	resource, err := url.JoinPath(db.BaseURL, "api", "workspaces",
		workspace.Namespace, workspace.Name, "entities", table)
	if err != nil {
		return nil, err
	}
	body, err := db.get(resource)
	if err != nil {
		switch e := err.(type) {
		case *databases.TableNotFoundError:
			e.Workspace = workspace.String()
			e.Table = table
		}
		return nil, err
	}
	var entities []core.Entity
	err = json.Unmarshal(body, &entities)
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (db Database) get(resource string) ([]byte, error) {
	slog.Debug(fmt.Sprintf("GET: %s", resource))
	req, err := http.NewRequest(http.MethodGet, resource, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", "application/json")
	resp, err := db.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case 200:
		return io.ReadAll(resp.Body)
	case 401, 403:
		return nil, &databases.UnauthorizedError{
			Database: "terra",
			Message:  http.StatusText(resp.StatusCode),
		}
	case 404:
		return nil, &databases.TableNotFoundError{
			Database: "terra",
		}
	case 503:
		return nil, &databases.UnavailableError{
			Database: "terra",
		}
	default:
		return nil, &databases.UnexpectedStatusError{
			Database:   "terra",
			StatusCode: resp.StatusCode,
		}
	}
}
