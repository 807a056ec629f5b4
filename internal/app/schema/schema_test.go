package schema

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFile_MissingFile(t *testing.T) {
	applier := NewApplier(nil)

	err := applier.ApplyFile(context.Background(), filepath.Join(t.TempDir(), "missing.sql"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}
