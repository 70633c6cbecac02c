package artifacts

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGet(t *testing.T) {
	store := NewStore()

	id := store.Put(
		Artifact{Filename: "Jane_Doe_Backend_Engineer_Resume.pdf", ContentType: "application/pdf", Data: []byte("%PDF")},
		Artifact{Filename: "Jane_Doe_Backend_Engineer_CoverLetter.txt", ContentType: "text/plain; charset=utf-8", Data: []byte("Dear Hiring Manager")},
	)

	entry, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, "Jane_Doe_Backend_Engineer_Resume.pdf", entry.Resume.Filename)
	assert.Equal(t, []byte("Dear Hiring Manager"), entry.CoverLetter.Data)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore()
	_, err := store.Get(uuid.New())
	assert.Error(t, err)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	id := store.Put(Artifact{Filename: "a.pdf"}, Artifact{Filename: "b.txt"})

	store.Delete(id)
	_, err := store.Get(id)
	assert.Error(t, err)

	// Deleting again is a no-op.
	store.Delete(id)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	ids := make([]uuid.UUID, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = store.Put(Artifact{Filename: "r.pdf"}, Artifact{Filename: "c.txt"})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	for _, id := range ids {
		_, err := store.Get(id)
		assert.NoError(t, err)
	}
}
