package hackathon_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"log/slog"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/hackathons/api"
	"github.com/xy-planning-network/hackathons/domain"
	"github.com/xy-planning-network/hackathons/hackathon"
	"github.com/xy-planning-network/hackathons/hackathon/mocks"
	"github.com/xy-planning-network/hackathons/logger"
)

var (
	errNetwork = &api.NetworkError{Op: "GET", URL: "http://backend.test/hackathons", Err: errors.New("connection refused")}
	errServer  = &api.ServerError{StatusCode: 500, Body: []byte("oops")}

	spring = domain.Hackathon{ID: 1, Raw: json.RawMessage(`{"id":1,"name":"Spring","theme":"AI"}`)}
	fall   = domain.Hackathon{ID: 2, Raw: json.RawMessage(`{"id":2,"name":"Fall","theme":"Climate"}`)}

	first  = []domain.Hackathon{spring}
	second = []domain.Hackathon{spring, fall}
)

func newStore(t *testing.T) (*hackathon.Store, *mocks.MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks.NewMockAPI(ctrl)
	return hackathon.NewStore(m), m
}

func TestNewStoreUnset(t *testing.T) {
	// Arrange
	s, _ := newStore(t)

	// Act
	hs, listed := s.Hackathons()
	h, viewed := s.Hackathon()

	// Assert
	require.False(t, listed)
	require.Nil(t, hs)
	require.False(t, viewed)
	require.Zero(t, h)
}

func TestList(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, m := newStore(t)
	m.EXPECT().ListHackathons(ctx).Return(first, nil)

	// Act
	err := s.List(ctx)

	// Assert
	require.Nil(t, err)
	hs, ok := s.Hackathons()
	require.True(t, ok)
	require.Equal(t, first, hs)
}

func TestListEmpty(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, m := newStore(t)
	m.EXPECT().ListHackathons(ctx).Return(nil, nil)

	// Act
	err := s.List(ctx)

	// Assert
	require.Nil(t, err)
	hs, ok := s.Hackathons()
	require.True(t, ok)
	require.NotNil(t, hs)
	require.Empty(t, hs)
}

func TestListIdempotent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, m := newStore(t)
	m.EXPECT().ListHackathons(ctx).Return(second, nil).Times(2)

	// Act
	require.Nil(t, s.List(ctx))
	once, _ := s.Hackathons()
	require.Nil(t, s.List(ctx))
	twice, _ := s.Hackathons()

	// Assert
	require.Equal(t, once, twice)
}

func TestListFailureKeepsPrior(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
	}{
		{"network", errNetwork},
		{"server", errServer},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			ctx := context.Background()
			s, m := newStore(t)
			gomock.InOrder(
				m.EXPECT().ListHackathons(ctx).Return(first, nil),
				m.EXPECT().ListHackathons(ctx).Return(nil, tc.err),
			)
			require.Nil(t, s.List(ctx))

			// Act
			err := s.List(ctx)

			// Assert
			require.ErrorIs(t, err, tc.err)
			hs, ok := s.Hackathons()
			require.True(t, ok)
			require.Equal(t, first, hs)
		})
	}
}

func TestCreateRefreshesList(t *testing.T) {
	// Arrange
	ctx := context.Background()
	form := domain.Form{"title": "Fall"}
	s, m := newStore(t)
	gomock.InOrder(
		m.EXPECT().CreateHackathon(ctx, form).Return(nil),
		m.EXPECT().ListHackathons(ctx).Return(second, nil),
	)

	// Act
	err := s.Create(ctx, form)

	// Assert
	require.Nil(t, err)
	hs, ok := s.Hackathons()
	require.True(t, ok)
	require.Equal(t, second, hs)
}

func TestCreateEqualsStandaloneList(t *testing.T) {
	// Arrange
	ctx := context.Background()
	form := domain.Form{"title": "Fall"}

	created, cm := newStore(t)
	cm.EXPECT().CreateHackathon(ctx, form).Return(nil)
	cm.EXPECT().ListHackathons(ctx).Return(second, nil)

	listed, lm := newStore(t)
	lm.EXPECT().ListHackathons(ctx).Return(second, nil)

	// Act
	require.Nil(t, created.Create(ctx, form))
	require.Nil(t, listed.List(ctx))

	// Assert
	a, _ := created.Hackathons()
	b, _ := listed.Hackathons()
	require.Equal(t, b, a)
}

func TestCreateFailureSkipsRefresh(t *testing.T) {
	// Arrange
	ctx := context.Background()
	form := domain.Form{}
	s, m := newStore(t)
	gomock.InOrder(
		m.EXPECT().ListHackathons(ctx).Return(first, nil),
		m.EXPECT().CreateHackathon(ctx, form).Return(errServer),
	)
	require.Nil(t, s.List(ctx))

	// Act
	err := s.Create(ctx, form)

	// Assert
	var se *api.ServerError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 500, se.StatusCode)

	hs, _ := s.Hackathons()
	require.Equal(t, first, hs)
}

func TestCreateRefreshFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	form := domain.Form{"title": "Fall"}
	s, m := newStore(t)
	gomock.InOrder(
		m.EXPECT().CreateHackathon(ctx, form).Return(nil),
		m.EXPECT().ListHackathons(ctx).Return(nil, errNetwork),
	)

	// Act
	err := s.Create(ctx, form)

	// Assert
	require.ErrorIs(t, err, errNetwork)
	_, ok := s.Hackathons()
	require.False(t, ok)
}

func TestView(t *testing.T) {
	// Arrange
	ctx := context.Background()
	want := domain.Hackathon{ID: 5, Raw: json.RawMessage(`{"id":5,"name":"Spring"}`)}
	s, m := newStore(t)
	m.EXPECT().GetHackathon(ctx, domain.ID(5)).Return(want, nil)

	// Act
	err := s.View(ctx, 5)

	// Assert
	require.Nil(t, err)
	got, ok := s.Hackathon()
	require.True(t, ok)
	require.Equal(t, want, got)

	_, listed := s.Hackathons()
	require.False(t, listed)
}

func TestViewFailureKeepsPrior(t *testing.T) {
	// Arrange
	ctx := context.Background()
	prior := domain.Hackathon{ID: 5, Raw: json.RawMessage(`{"id":5,"name":"Spring"}`)}
	s, m := newStore(t)
	gomock.InOrder(
		m.EXPECT().GetHackathon(ctx, domain.ID(5)).Return(prior, nil),
		m.EXPECT().GetHackathon(ctx, domain.ID(6)).Return(domain.Hackathon{}, errServer),
	)
	require.Nil(t, s.View(ctx, 5))

	// Act
	err := s.View(ctx, 6)

	// Assert
	require.True(t, api.IsStatus(err, 500))
	got, _ := s.Hackathon()
	require.Equal(t, prior, got)
}

func TestUpdateDoesNotRefresh(t *testing.T) {
	// Arrange
	ctx := context.Background()
	item := domain.Hackathon{ID: 5, Raw: json.RawMessage(`{"id":5,"name":"Spring"}`)}
	form := domain.Form{"title": "Summer"}
	s, m := newStore(t)
	gomock.InOrder(
		m.EXPECT().ListHackathons(ctx).Return(first, nil),
		m.EXPECT().GetHackathon(ctx, domain.ID(5)).Return(item, nil),
		m.EXPECT().UpdateHackathon(ctx, domain.ID(5), form).Return(nil),
	)
	require.Nil(t, s.List(ctx))
	require.Nil(t, s.View(ctx, 5))

	// Act
	err := s.Update(ctx, 5, form)

	// Assert
	require.Nil(t, err)
	hs, _ := s.Hackathons()
	require.Equal(t, first, hs)
	h, _ := s.Hackathon()
	require.Equal(t, item, h)
}

func TestUpdateFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, m := newStore(t)
	m.EXPECT().UpdateHackathon(ctx, domain.ID(5), gomock.Any()).Return(errNetwork)

	// Act
	err := s.Update(ctx, 5, domain.Form{})

	// Assert
	var ne *api.NetworkError
	require.True(t, errors.As(err, &ne))
}

func TestDeleteKeepsSlots(t *testing.T) {
	// Arrange
	ctx := context.Background()
	item := spring
	s, m := newStore(t)
	gomock.InOrder(
		m.EXPECT().ListHackathons(ctx).Return(first, nil),
		m.EXPECT().GetHackathon(ctx, domain.ID(1)).Return(item, nil),
		m.EXPECT().DeleteHackathon(ctx, domain.ID(1)).Return(nil),
	)
	require.Nil(t, s.List(ctx))
	require.Nil(t, s.View(ctx, 1))

	// Act
	err := s.Delete(ctx, 1)

	// Assert
	require.Nil(t, err)
	hs, _ := s.Hackathons()
	require.Equal(t, first, hs)
	h, _ := s.Hackathon()
	require.Equal(t, item, h)
}

func TestDeleteFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, m := newStore(t)
	m.EXPECT().DeleteHackathon(ctx, domain.ID(3)).Return(errServer)

	// Act
	err := s.Delete(ctx, 3)

	// Assert
	require.ErrorIs(t, err, errServer)
}

func TestHackathonsReturnsCopy(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, m := newStore(t)
	m.EXPECT().ListHackathons(ctx).Return([]domain.Hackathon{spring.Clone()}, nil)
	require.Nil(t, s.List(ctx))

	// Act
	hs, _ := s.Hackathons()
	hs[0].ID = 9
	copy(hs[0].Raw, `{"id":9}`)

	// Assert
	again, _ := s.Hackathons()
	require.Equal(t, spring, again[0])
}

func TestConcurrentOperations(t *testing.T) {
	// Arrange
	ctx := context.Background()
	s, m := newStore(t)
	m.EXPECT().ListHackathons(gomock.Any()).Return(second, nil).AnyTimes()
	m.EXPECT().GetHackathon(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.ID) (domain.Hackathon, error) {
			return domain.Hackathon{ID: id}, nil
		},
	).AnyTimes()

	// Act
	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.List(ctx)
			_, _ = s.Hackathons()
		}()
		go func(id domain.ID) {
			defer wg.Done()
			_ = s.View(ctx, id)
			_, _ = s.Hackathon()
		}(domain.ID(i))
	}
	wg.Wait()

	// Assert
	hs, _ := s.Hackathons()
	require.Equal(t, second, hs)
	h, ok := s.Hackathon()
	require.True(t, ok)
	require.True(t, h.ID >= 1 && h.ID <= 20)
}

func TestWithLogger(t *testing.T) {
	// Arrange
	ctx := context.Background()
	b := new(bytes.Buffer)
	l := logger.New(slog.New(slog.NewJSONHandler(b, nil)))
	m := mocks.NewMockAPI(gomock.NewController(t))
	s := hackathon.NewStore(m, hackathon.WithLogger(l))
	m.EXPECT().DeleteHackathon(ctx, domain.ID(3)).Return(errServer)

	// Act
	_ = s.Delete(ctx, 3)

	// Assert
	require.Contains(t, b.String(), `"level":"WARN"`)
	require.Contains(t, b.String(), "failed deleting hackathon")
}

func TestBackendRecordsCachedVerbatim(t *testing.T) {
	// Arrange
	ctx := context.Background()
	one := `{"id":1,"name":"Spring","theme":"AI","description":"d","start_time":"2025-05-01T10:00:00"}`
	two := `{"id":2,"name":"Fall","theme":null,"end_time":"2025-11-02T18:00:00","tags":["go"]}`
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/hackathons":
			_, _ = io.WriteString(w, "["+one+","+two+"]")
		case "/hackathon/2":
			_, _ = io.WriteString(w, two)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(backend.Close)

	c, err := api.New(backend.URL)
	require.Nil(t, err)
	s := hackathon.NewStore(c)

	// Act
	listErr := s.List(ctx)
	viewErr := s.View(ctx, 2)

	// Assert
	require.Nil(t, listErr)
	require.Nil(t, viewErr)

	hs, ok := s.Hackathons()
	require.True(t, ok)
	out, err := json.Marshal(hs)
	require.Nil(t, err)
	require.JSONEq(t, "["+one+","+two+"]", string(out))

	h, ok := s.Hackathon()
	require.True(t, ok)
	require.Equal(t, domain.ID(2), h.ID)
	out, err = json.Marshal(h)
	require.Nil(t, err)
	require.JSONEq(t, two, string(out))
}
