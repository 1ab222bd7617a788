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

// This package contains testing utilities for the trio VCF finder.
package triotest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"

	"github.com/gorilla/mux"

	"github.com/gregor-consortium/triovcf/core"
	"github.com/gregor-consortium/triovcf/databases"
)

// Enables DEBUG log messages for the structured log (slog).
func EnableDebugLogging() {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelDebug)
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(h))
}

// Tables maps data table names to their entities.
type Tables map[string][]core.Entity

//--------------------
// Entity constructors
//--------------------

// Creates an entity with the given name and type, and attributes given as
// alternating keys and values.
func Entity(name, entityType string, keysAndValues ...any) core.Entity {
	attributes := make(map[string]any)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		attributes[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return core.Entity{
		Name:       name,
		EntityType: entityType,
		Attributes: attributes,
	}
}

// Creates a phenotype entity associating a participant with an HPO term.
func Phenotype(name, participantId, termId string) core.Entity {
	return Entity(name, "phenotype",
		"participant_id", participantId,
		"term_id", termId)
}

// Creates a participant entity. Pass "0" for a parent that isn't known.
func Participant(id, familyId, maternalId, paternalId string) core.Entity {
	return Entity(id, "participant",
		"family_id", familyId,
		"maternal_id", maternalId,
		"paternal_id", paternalId)
}

// Creates a variant call entity for a file produced from a sample set.
func VariantCall(name, setId, path string) core.Entity {
	return Entity(name, "called_variants_dna_short_read",
		"aligned_dna_short_read_set_id", setId,
		"called_variants_dna_file", path)
}

//------------------------
// Database test fixture
//------------------------

// A fetch recorded by a Database fixture
type Request struct {
	Workspace core.Workspace
	Table     string
}

// This type implements an in-memory databases.Database test fixture.
type Database struct {
	// tables for each workspace
	Workspaces map[core.Workspace]Tables
	// fetches made, in order
	Requests []Request
}

func NewDatabase(workspaces map[core.Workspace]Tables) *Database {
	return &Database{
		Workspaces: workspaces,
	}
}

func (db *Database) Entities(workspace core.Workspace, table string) []core.Entity {
	db.Requests = append(db.Requests, Request{Workspace: workspace, Table: table})
	if tables, found := db.Workspaces[workspace]; found {
		if entities, found := tables[table]; found {
			return entities
		}
	}
	return []core.Entity{}
}

// Registers the given database fixture under the given name.
func RegisterDatabase(dbName string, db *Database) error {
	return databases.RegisterDatabase(dbName, func() (databases.Database, error) {
		return db, nil
	})
}

//-------------------------
// Terra API test fixture
//-------------------------

// TerraServer imitates the entities endpoint of the Terra orchestration API.
type TerraServer struct {
	*httptest.Server
	// tables for each workspace (matched by namespace and name)
	Workspaces map[core.Workspace]Tables

	mutex sync.Mutex
	// status codes returned in place of the named tables
	failures map[string]int
	// Authorization headers received, in order
	authorizations []string
}

// Starts a fake Terra server holding the given workspace tables. Call Close
// when finished with it.
func NewTerraServer(workspaces map[core.Workspace]Tables) *TerraServer {
	server := &TerraServer{
		Workspaces: workspaces,
		failures:   make(map[string]int),
	}
	router := mux.NewRouter()
	router.HandleFunc("/api/workspaces/{namespace}/{workspace}/entities/{table}",
		server.getEntities).Methods(http.MethodGet)
	server.Server = httptest.NewServer(router)
	return server
}

// Makes requests for the named table fail with the given status code.
func (s *TerraServer) Fail(table string, status int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.failures[table] = status
}

// Restores normal responses for the named table.
func (s *TerraServer) Recover(table string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.failures, table)
}

// Returns the Authorization headers received so far.
func (s *TerraServer) Authorizations() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]string{}, s.authorizations...)
}

func (s *TerraServer) getEntities(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	table := vars["table"]

	s.mutex.Lock()
	s.authorizations = append(s.authorizations, r.Header.Get("Authorization"))
	status, failed := s.failures[table]
	s.mutex.Unlock()

	if failed {
		http.Error(w, http.StatusText(status), status)
		return
	}
	for workspace, tables := range s.Workspaces {
		if workspace.Namespace != vars["namespace"] || workspace.Name != vars["workspace"] {
			continue
		}
		entities, found := tables[table]
		if !found {
			entities = []core.Entity{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entities)
		return
	}
	http.Error(w, "workspace not found", http.StatusNotFound)
}
