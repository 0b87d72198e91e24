package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	assert.True(t, isSerializationFailure(serialization))
	// Обёртки не мешают распознаванию
	assert.True(t, isSerializationFailure(fmt.Errorf("run failed: %w", serialization)))

	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, isSerializationFailure(errors.New("plain error")))
	assert.False(t, isSerializationFailure(nil))
}
