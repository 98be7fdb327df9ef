// Package tests provides helpers for carrying test metadata (a unique test
// id and the test name) through context.Context, so tests can create
// uniquely-named external resources such as temp files.
package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

// contextKey is a private type used for storing test metadata in a context.
// Using a custom type instead of string prevents collisions with other
// packages that might use the same key names.
type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// Info holds the metadata attached to a test context.
type Info struct {
	// Id is a unique test identifier: a UUID with a "test-" prefix.
	Id string

	// Name is the full test path from testing.T.Name()
	// (e.g. "TestLoadTable/rejects_missing_canonical").
	Name string
}

// GetUniqueContext creates a context derived from t.Context() that carries a
// unique test identifier and the test name. Use the id to uniquify resource
// names created by the test.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	ctx := context.WithValue(t.Context(), testIdKey, "test-"+uuid.New().String())

	return context.WithValue(ctx, testNameKey, t.Name())
}

// GetTestInfo extracts the test metadata from a context created by
// GetUniqueContext. The second return value is false if the context does not
// carry test metadata.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, ok := ctx.Value(testIdKey).(string)
	if !ok {
		return Info{}, false
	}

	name, _ := ctx.Value(testNameKey).(string)

	return Info{Id: id, Name: name}, true
}
