// Package sqlstoretest opens throwaway SQLite databases for tests.
package sqlstoretest

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"jobboard-service/internal/infrastructure/db/sqlstore"
)

var seq atomic.Int64

// NewDB returns a migrated in-memory database private to the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	db, err := sqlstore.Open("sqlite", dsn, Logger())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = sqlstore.Close(db) })
	return db
}

// Logger discards output.
func Logger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
