package catalog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgm-tp/jfunk-sub000/catalog"
)

type reload struct {
	c   *catalog.Catalog
	err error
}

func next(t *testing.T, ch <-chan reload) reload {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
		return reload{}
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(baseYAML), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan reload, 16)
	done := make(chan error, 1)
	go func() {
		done <- catalog.Watch(ctx, dir, "*.yaml", func(c *catalog.Catalog, err error) {
			ch <- reload{c: c, err: err}
		}, quiet)
	}()

	first := next(t, ch)
	require.NoError(t, first.err)
	assert.Equal(t, []string{"ticket"}, first.c.Fields())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "more.yaml"), []byte(moreYAML), 0o600))
	// a half-written file may fail to parse, the final state must not
	var second reload
	for second.c == nil || len(second.c.Fields()) != 2 {
		second = next(t, ch)
	}
	assert.Equal(t, []string{"name", "ticket"}, second.c.Fields())

	// a duplicate definition reports the error
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dup.yaml"), []byte(baseYAML), 0o600))
	for {
		r := next(t, ch)
		if errors.Is(r.err, catalog.ErrDuplicate) {
			break
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_Subdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "base"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base", "base.yaml"), []byte(baseYAML), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := make(chan reload, 16)
	done := make(chan error, 1)
	go func() {
		done <- catalog.Watch(ctx, dir, catalog.DefaultGlob, func(c *catalog.Catalog, err error) {
			ch <- reload{c: c, err: err}
		}, quiet)
	}()

	first := next(t, ch)
	require.NoError(t, first.err)
	assert.Equal(t, []string{"ticket"}, first.c.Fields())

	// a directory created after the start is watched as well
	nested := filepath.Join(dir, "more", "nested")
	require.NoError(t, os.MkdirAll(nested, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "more.yml"), []byte(moreYAML), 0o600))
	var second reload
	for second.c == nil || len(second.c.Fields()) != 2 {
		second = next(t, ch)
	}
	assert.Equal(t, []string{"name", "ticket"}, second.c.Fields())

	// an edit inside an existing subdirectory reloads too
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base", "base.yaml"), []byte(baseYAML+`
  serial:
    alphabet: ids
    pattern: "[0-9]{8}"
`), 0o600))
	var third reload
	for third.c == nil || len(third.c.Fields()) != 3 {
		third = next(t, ch)
	}
	assert.Equal(t, []string{"name", "serial", "ticket"}, third.c.Fields())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_BadInput(t *testing.T) {
	ctx := context.Background()
	noop := func(*catalog.Catalog, error) {}

	assert.Error(t, catalog.Watch(ctx, t.TempDir(), "[", noop))
	assert.Error(t, catalog.Watch(ctx, filepath.Join(t.TempDir(), "missing"), "*.yaml", noop))
}
