package history

import (
	"testing"

	"github.com/j0lvera/eightball/internal/testutil"
)

func TestPostgresStore(t *testing.T) {
	client, cleanup := testutil.TestDB(t)
	defer cleanup()

	exerciseStore(t, NewPostgresStore(client))
}
