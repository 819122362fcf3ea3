package uuid

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	id := New()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestUUID7(t *testing.T) {
	id := UUID7()
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestNewRandom(t *testing.T) {
	id, err := NewRandom()
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestParse(t *testing.T) {
	validUUID := "123e4567-e89b-12d3-a456-426614174000"
	id, err := Parse(validUUID)
	assert.NoError(t, err)
	assert.Equal(t, validUUID, id.String())

	_, err = Parse("not-a-uuid")
	assert.Error(t, err)
}

func TestMustParse(t *testing.T) {
	validUUID := "123e4567-e89b-12d3-a456-426614174000"
	id := MustParse(validUUID)
	assert.Equal(t, validUUID, id.String())

	assert.Panics(t, func() {
		MustParse("not-a-uuid")
	})
}

func TestIsUUIDv7(t *testing.T) {
	assert.True(t, IsUUIDv7(New()))
	assert.False(t, IsUUIDv7(uuid.New()))
}

func TestCompare(t *testing.T) {
	id1 := New()
	time.Sleep(time.Millisecond)
	id2 := New()

	assert.Equal(t, -1, Compare(id1, id2))
	assert.Equal(t, 1, Compare(id2, id1))
	assert.Equal(t, 0, Compare(id1, id1))
}
