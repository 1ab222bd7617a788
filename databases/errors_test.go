package databases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NotFoundError{Database: "testdb"}
	assert.Equal(t, "The database 'testdb' was not found", err.Error())
}

func TestAlreadyRegisteredError(t *testing.T) {
	err := AlreadyRegisteredError{Database: "testdb"}
	assert.Equal(t, "Cannot register database 'testdb': already registered", err.Error())
}

func TestUnauthorizedError(t *testing.T) {
	err := UnauthorizedError{
		Database: "testdb",
		Message:  "access denied",
	}
	assert.Equal(t, "Unable to authorize request for database 'testdb': access denied", err.Error())
}

func TestUnavailableError(t *testing.T) {
	err := UnavailableError{Database: "testdb"}
	assert.Equal(t, "Cannot reach database 'testdb': unavailable", err.Error())
}

func TestTableNotFoundError(t *testing.T) {
	err := TableNotFoundError{
		Database:  "testdb",
		Workspace: "ns/ws",
		Table:     "phenotype",
	}
	assert.Equal(t, "Can't access table 'phenotype' in workspace 'ns/ws' of database 'testdb': not found", err.Error())
}

func TestUnexpectedStatusError(t *testing.T) {
	err := UnexpectedStatusError{Database: "testdb", StatusCode: 418}
	assert.Equal(t, "An error occurred with the testdb database (418)", err.Error())
}

func TestDowngradedRedirectError(t *testing.T) {
	err := DowngradedRedirectError{Endpoint: "example.com/"}
	assert.Equal(t, "The endpoint example.com/ is attempting to downgrade an HTTPS request to HTTP", err.Error())
}
