package fetch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sellerhq/seller-console/fetch"
)

type page struct {
	Items []string
	Page  int
}

func TestNilFuncIsInert(t *testing.T) {
	r := fetch.NewResource[int, page](nil, page{Items: []string{"seed"}})
	defer r.Close()

	r.Load(context.Background(), 1, "")
	r.Wait()

	state := r.State()
	require.False(t, state.Loading)
	require.NoError(t, state.Err)
	require.Equal(t, []string{"seed"}, state.Data.Items)
}

func TestLoadSuccess(t *testing.T) {
	var gotToken string
	fn := func(ctx context.Context, pageNo int, token string) (page, error) {
		gotToken = token
		return page{Items: []string{"a", "b"}, Page: pageNo}, nil
	}
	r := fetch.NewResource(fn, page{})
	defer r.Close()

	r.Load(context.Background(), 3, "tok")
	r.Wait()

	state := r.State()
	require.False(t, state.Loading)
	require.NoError(t, state.Err)
	require.Equal(t, 3, state.Data.Page)
	require.Equal(t, []string{"a", "b"}, state.Data.Items)
	require.Equal(t, "tok", gotToken)
}

func TestLoadFailureKeepsPreviousData(t *testing.T) {
	boom := errors.New("server is down")
	calls := 0
	fn := func(ctx context.Context, pageNo int, token string) (page, error) {
		calls++
		if calls > 1 {
			return page{}, boom
		}
		return page{Items: []string{"a"}, Page: pageNo}, nil
	}
	r := fetch.NewResource(fn, page{})
	defer r.Close()

	r.Load(context.Background(), 1, "")
	r.Wait()
	r.Load(context.Background(), 2, "")
	r.Wait()

	state := r.State()
	require.False(t, state.Loading)
	require.ErrorIs(t, state.Err, boom)
	require.Equal(t, []string{"a"}, state.Data.Items)
	require.Equal(t, 1, state.Data.Page)
}

func TestLoadSuccessClearsError(t *testing.T) {
	calls := 0
	fn := func(ctx context.Context, pageNo int, token string) (page, error) {
		calls++
		if calls == 1 {
			return page{}, errors.New("server is down")
		}
		return page{Items: []string{"b"}}, nil
	}
	r := fetch.NewResource(fn, page{})
	defer r.Close()

	r.Load(context.Background(), 1, "")
	r.Wait()
	require.Error(t, r.State().Err)

	r.Load(context.Background(), 1, "")
	r.Wait()

	state := r.State()
	require.NoError(t, state.Err)
	require.Equal(t, []string{"b"}, state.Data.Items)
}

func TestStaleResponseNeverCommits(t *testing.T) {
	release := make(chan struct{})
	fn := func(ctx context.Context, pageNo int, token string) (page, error) {
		if pageNo == 1 {
			<-release
		}
		return page{Items: []string{"p"}, Page: pageNo}, nil
	}
	r := fetch.NewResource(fn, page{})
	defer r.Close()

	r.Load(context.Background(), 1, "")
	r.Load(context.Background(), 2, "")
	require.Eventually(t, func() bool {
		return r.State().Data.Page == 2
	}, time.Second, time.Millisecond)

	// The first call settles only now, after the second already committed.
	close(release)
	r.Wait()

	state := r.State()
	require.False(t, state.Loading)
	require.Equal(t, 2, state.Data.Page)
}

func TestLoadCancelsPreviousContext(t *testing.T) {
	firstCtx := make(chan context.Context, 1)
	block := make(chan struct{})
	fn := func(ctx context.Context, pageNo int, token string) (page, error) {
		if pageNo == 1 {
			firstCtx <- ctx
			<-block
		}
		return page{Page: pageNo}, nil
	}
	r := fetch.NewResource(fn, page{})
	defer r.Close()

	r.Load(context.Background(), 1, "")
	ctx := <-firstCtx
	r.Load(context.Background(), 2, "")

	<-ctx.Done()
	close(block)
	r.Wait()

	require.Equal(t, 2, r.State().Data.Page)
}

func TestCloseDiscardsInFlightResult(t *testing.T) {
	started := make(chan struct{})
	fn := func(ctx context.Context, pageNo int, token string) (page, error) {
		close(started)
		<-ctx.Done()
		return page{Items: []string{"late"}}, ctx.Err()
	}
	r := fetch.NewResource(fn, page{Items: []string{"seed"}})

	r.Load(context.Background(), 1, "")
	<-started
	r.Close()

	state := r.State()
	require.Equal(t, []string{"seed"}, state.Data.Items)
	require.NoError(t, state.Err)
}

func TestSetData(t *testing.T) {
	r := fetch.NewResource[int, page](nil, page{})
	defer r.Close()

	r.SetData(page{Items: []string{"spliced"}})
	require.Equal(t, []string{"spliced"}, r.State().Data.Items)
}

func TestOnChangeObservesTransitions(t *testing.T) {
	var mu sync.Mutex
	var states []fetch.State[page]
	fn := func(ctx context.Context, pageNo int, token string) (page, error) {
		return page{Page: pageNo}, nil
	}
	r := fetch.NewResource(fn, page{}, fetch.WithOnChange[int, page](func(s fetch.State[page]) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	}))
	defer r.Close()

	r.Load(context.Background(), 1, "")
	r.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, states, 2)
	require.True(t, states[0].Loading)
	require.False(t, states[1].Loading)
	require.Equal(t, 1, states[1].Data.Page)
}
