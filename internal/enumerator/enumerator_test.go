package enumerator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform/fake"
)

func defaultOptions() Options {
	return Options{Marker: "- Beta", Separator: " - "}
}

func TestEnumerateFiltersAndParses(t *testing.T) {
	desk := fake.New(
		fake.Window{Handle: 0x10, Title: "Alpha - Cra - 2.70 - Beta", Visible: true, PID: 40},
		fake.Window{Handle: 0x20, Title: "Hidden - Iop - Beta", Visible: false},
		fake.Window{Handle: 0x30, Title: "Notepad", Visible: true},
		fake.Window{Handle: 0x40, Title: "Bravo - Sram - 2.70 - Beta", Visible: true, PID: 41},
		fake.Window{Handle: 0x50, Title: "NoSeparator- Beta", Visible: true},
	)

	got := New(desk, defaultOptions()).Enumerate(context.Background())
	require.Len(t, got, 2)

	assert.Equal(t, model.Handle(0x10), got[0].Handle)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, "Cra", got[0].Label)
	assert.Equal(t, uint32(40), got[0].PID)
	assert.Equal(t, "Alpha - Cra - 2.70 - Beta", got[0].Title)

	assert.Equal(t, model.Handle(0x40), got[1].Handle)
	assert.Equal(t, "Bravo", got[1].Name)
}

func TestEnumerateKeepsOSOrder(t *testing.T) {
	desk := fake.New(
		fake.Window{Handle: 3, Title: "C - Eca - Beta", Visible: true},
		fake.Window{Handle: 1, Title: "A - Eca - Beta", Visible: true},
		fake.Window{Handle: 2, Title: "B - Eca - Beta", Visible: true},
	)
	got := New(desk, defaultOptions()).Enumerate(context.Background())
	require.Len(t, got, 3)
	assert.Equal(t, []model.Handle{3, 1, 2}, []model.Handle{got[0].Handle, got[1].Handle, got[2].Handle})
}

func TestEnumerateFailureIsEmpty(t *testing.T) {
	desk := fake.New(fake.Window{Handle: 1, Title: "A - Eca - Beta", Visible: true})
	desk.FailEnum = errors.New("access denied")

	got := New(desk, defaultOptions()).Enumerate(context.Background())
	assert.Empty(t, got)
}

func TestEnumerateTruncatesTitle(t *testing.T) {
	desk := fake.New(fake.Window{Handle: 1, Title: "A - Eca - Beta", Visible: true})
	opts := defaultOptions()
	opts.TitleBuffer = 8

	// "A - Eca " no longer carries the marker.
	got := New(desk, opts).Enumerate(context.Background())
	assert.Empty(t, got)
}

func TestEnumerateResolvesProcess(t *testing.T) {
	desk := fake.New(fake.Window{Handle: 1, Title: "A - Eca - Beta", Visible: true, PID: 7})
	opts := defaultOptions()
	opts.ResolveProcess = true

	e := New(desk, opts).WithProcessNames(func(pid uint32) (string, error) {
		if pid == 7 {
			return "Dofus.exe", nil
		}
		return "", errors.New("no such process")
	})
	got := e.Enumerate(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "Dofus.exe", got[0].Process)
}

func TestActive(t *testing.T) {
	desk := fake.New(
		fake.Window{Handle: 1, Title: "A - Eca - Beta", Visible: true},
		fake.Window{Handle: 2, Title: "Browser", Visible: true},
	)
	e := New(desk, defaultOptions())

	_, ok := e.Active(context.Background())
	assert.False(t, ok, "no foreground window")

	desk.SetForegroundHandle(2)
	_, ok = e.Active(context.Background())
	assert.False(t, ok, "foreground is not a match")

	desk.SetForegroundHandle(1)
	w, ok := e.Active(context.Background())
	require.True(t, ok)
	assert.Equal(t, "A", w.Name)

	desk.Remove(1)
	_, ok = e.Active(context.Background())
	assert.False(t, ok, "stale handle")
}
