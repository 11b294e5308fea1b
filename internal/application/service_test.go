package application

import (
	"context"
	"sync"
	"testing"

	"like-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_Count_AbsentKeyIsZero(t *testing.T) {
	t.Parallel()
	svc := NewLikeService(&fakeCounterStore{})

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func Test_Like_ThenCount(t *testing.T) {
	t.Parallel()
	st := &fakeCounterStore{}
	svc := NewLikeService(st)
	ctx := context.Background()

	n, err := svc.Like(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = svc.Like(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	got, err := svc.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, got)
	require.EqualValues(t, 2, st.store[domain.DefaultCounterKey])
}

func Test_WithKey(t *testing.T) {
	t.Parallel()
	st := &fakeCounterStore{}
	svc := NewLikeService(st, WithKey("header-likes"))
	require.Equal(t, "header-likes", svc.Key())

	_, err := svc.Like(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, st.store["header-likes"])
	require.NotContains(t, st.store, domain.DefaultCounterKey)
}

func Test_StoreErrorsWrapErrStore(t *testing.T) {
	t.Parallel()
	st := &fakeCounterStore{err: ErrRepo}
	svc := NewLikeService(st)
	ctx := context.Background()

	_, err := svc.Count(ctx)
	require.ErrorIs(t, err, ErrStore)
	require.ErrorIs(t, err, ErrRepo)

	_, err = svc.Like(ctx)
	require.ErrorIs(t, err, ErrStore)
	require.ErrorIs(t, err, ErrRepo)
	require.Empty(t, st.store)
}

func Test_Like_CallsIncrOnce(t *testing.T) {
	t.Parallel()
	st := &fakeCounterStore{err: ErrRepo}
	svc := NewLikeService(st)

	_, err := svc.Like(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, st.calls)
}

func Test_Like_Concurrent(t *testing.T) {
	t.Parallel()
	st := &fakeCounterStore{}
	svc := NewLikeService(st)

	const n = 10
	var wg sync.WaitGroup
	seen := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := svc.Like(context.Background())
			require.NoError(t, err)
			seen <- v
		}()
	}
	wg.Wait()
	close(seen)

	uniq := map[int64]bool{}
	for v := range seen {
		uniq[v] = true
	}
	require.Len(t, uniq, n)

	got, err := svc.Counter(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.LikeCounter{Key: domain.DefaultCounterKey, Value: n}, got)
}
