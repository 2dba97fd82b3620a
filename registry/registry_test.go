package registry

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oopsididitagain335/futurecommon/model"
)

func TestPutAndTake(t *testing.T) {
	r := New()
	app := model.Application{ID: "app-1", Name: "Ada", Email: "ada@example.com"}

	r.Put(app)
	require.Equal(t, 1, r.Len())

	got, ok := r.Take("app-1")
	require.True(t, ok)
	assert.Equal(t, app, got)
	assert.Equal(t, 0, r.Len())
}

func TestTakeMissing(t *testing.T) {
	r := New()

	_, ok := r.Take("nope")
	assert.False(t, ok)
}

func TestTakeIsOnce(t *testing.T) {
	r := New()
	r.Put(model.Application{ID: "app-1"})

	_, first := r.Take("app-1")
	_, second := r.Take("app-1")

	assert.True(t, first)
	assert.False(t, second)
}

// Two concurrent reviewer clicks on the same application must resolve to
// exactly one winner.
func TestTakeConcurrent(t *testing.T) {
	r := New()
	r.Put(model.Application{ID: "app-1"})

	const workers = 32
	var wins int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := r.Take("app-1"); ok {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), wins)
	assert.Equal(t, 0, r.Len())
}

func TestSnapshot(t *testing.T) {
	r := New()
	for i := 0; i < 3; i++ {
		r.Put(model.Application{ID: fmt.Sprintf("app-%d", i)})
	}

	snap := r.Snapshot()
	require.Len(t, snap, 3)

	// Snapshot must not alias the internal map.
	r.Take("app-0")
	assert.Len(t, snap, 3)
	assert.Equal(t, 2, r.Len())
}
