package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winkhq/onboard/internal/client/config"
	"github.com/winkhq/onboard/internal/client/draft"
	"github.com/winkhq/onboard/internal/client/models"
	"github.com/winkhq/onboard/internal/logging"
)

type memRepo struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemRepo() *memRepo { return &memRepo{data: make(map[string][]byte)} }

func (r *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *memRepo) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

func (r *memRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *memRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string][]byte)
	return nil
}

type fakeRegistration struct {
	failures int
	calls    int
}

func (f *fakeRegistration) Complete(context.Context) (*models.Company, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("Le nom de l'entreprise est requis")
	}
	return &models.Company{ID: "company-1", Name: "Acme"}, nil
}

func testApp(t *testing.T, input string, reg *fakeRegistration) (*App, *draft.Store) {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := draft.NewStore(context.Background(), newMemRepo(), logger)

	return &App{
		config:       &config.Config{AutosaveDelay: time.Hour},
		store:        store,
		registration: reg,
		logger:       logger,
		reader:       bufio.NewReader(strings.NewReader(input)),
		out:          io.Discard,
	}, store
}

func TestRegister_WalksAllStepsWithBackNavigation(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.Join([]string{
		// step 1
		"Ana", "Lee", "ana@x.com", "",
		// step 2: go back immediately
		"back",
		// step 1 again: keep all restored values
		"", "", "", "",
		// step 2
		"Acme", "1 Main Street", "tech", "", "", "",
		// step 3: no sector, size picked by number, short description
		"", "2", "hi", "",
	}, "\n") + "\n"

	reg := &fakeRegistration{}
	app, store := testApp(t, input, reg)

	require.NoError(t, app.Register(context.Background()))
	require.Equal(t, 1, reg.calls)
	assert.Equal(t, "ana@x.com", app.userEmail)

	// creation succeeded, so the draft is gone
	_, ok := store.PersonalDetails()
	assert.False(t, ok)
	_, ok = store.Workspace()
	assert.False(t, ok)
}

func TestRegister_FailedCreationStaysOnFinalStep(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.Join([]string{
		// step 1
		"Ana", "Lee", "ana@x.com", "",
		// step 2
		"Acme", "1 Main Street", "tech", "", "", "",
		// step 3, first attempt (fails)
		"", "2", "hi", "",
		// step 3, second attempt (succeeds)
		"", "", "", "",
	}, "\n") + "\n"

	reg := &fakeRegistration{failures: 1}
	app, store := testApp(t, input, reg)

	require.NoError(t, app.Register(context.Background()))
	require.Equal(t, 2, reg.calls)
	// the draft survived the failed attempt and was cleared by the retry
	_, ok := store.Workspace()
	assert.False(t, ok)
}
