package db_test

import (
	"context"
	"testing"

	"inventory-service/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoolRejectsMalformedURL(t *testing.T) {
	_, err := db.NewPool(context.Background(), "not a connection string")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse")
}
