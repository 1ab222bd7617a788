package core

import (
	"fmt"
)

// A Workspace identifies a Terra workspace whose data tables are searched for
// trios. The Label is the short name that appears in reports.
type Workspace struct {
	// billing project (namespace) that owns the workspace
	Namespace string `yaml:"namespace"`
	// name of the workspace within its namespace
	Name string `yaml:"name"`
	// short label used in the "workspace" report column
	Label string `yaml:"label"`
}

func (ws Workspace) String() string {
	return fmt.Sprintf("%s/%s", ws.Namespace, ws.Name)
}

// An Entity is a single row in a workspace data table. Its attributes are
// left undecoded until a caller knows which table it came from.
type Entity struct {
	// the entity's name (its primary key within its table)
	Name string `json:"name"`
	// the name of the table holding the entity
	EntityType string `json:"entityType"`
	// named attribute values (strings, numbers, lists, or references)
	Attributes map[string]any `json:"attributes"`
}
