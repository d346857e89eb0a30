package focus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/organizer-cli/internal/model"
	"github.com/mj1618/organizer-cli/internal/platform"
	"github.com/mj1618/organizer-cli/internal/platform/fake"
)

const target = model.Handle(0x42)

func newDesktop() *fake.Desktop {
	return fake.New(fake.Window{Handle: target, Title: "A - Cra - Beta", Visible: true, Iconic: true, TID: 9})
}

func TestForceForegroundProtocol(t *testing.T) {
	desk := newDesktop()
	c := NewController(desk, desk)

	require.NoError(t, c.ForceForeground(context.Background(), target))
	assert.Equal(t, []string{
		"attach 1->9",
		"restore 0x42",
		"foreground 0x42",
		"detach 1->9",
	}, desk.Calls())
	assert.Equal(t, target, desk.ForegroundWindow())
	assert.False(t, desk.Attached(1, 9))
}

func TestForceForegroundAlwaysDetaches(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		setup   func(d *fake.Desktop)
		wantErr error
		calls   []string
	}{
		{
			name:    "restore fails",
			setup:   func(d *fake.Desktop) { d.FailRestore = map[model.Handle]error{target: boom} },
			wantErr: ErrRestoreFailed,
			calls:   []string{"attach 1->9", "restore 0x42", "detach 1->9"},
		},
		{
			name:    "foreground fails",
			setup:   func(d *fake.Desktop) { d.FailForeground = map[model.Handle]error{target: boom} },
			wantErr: ErrForegroundFailed,
			calls:   []string{"attach 1->9", "restore 0x42", "foreground 0x42", "detach 1->9"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desk := newDesktop()
			tt.setup(desk)
			err := NewController(desk, desk).ForceForeground(context.Background(), target)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, tt.calls, desk.Calls())
			assert.False(t, desk.Attached(1, 9))
		})
	}
}

func TestForceForegroundAttachFailureAborts(t *testing.T) {
	desk := newDesktop()
	desk.FailAttach = errors.New("denied")

	err := NewController(desk, desk).ForceForeground(context.Background(), target)
	assert.ErrorIs(t, err, ErrAttachFailed)
	assert.Equal(t, []string{"attach 1->9"}, desk.Calls())
}

func TestForceForegroundDetachFailure(t *testing.T) {
	desk := newDesktop()
	desk.FailDetach = errors.New("stuck")

	err := NewController(desk, desk).ForceForeground(context.Background(), target)
	assert.ErrorIs(t, err, ErrDetachFailed)
	assert.Equal(t, target, desk.ForegroundWindow(), "foreground change took effect")
}

func TestForceForegroundDetachFailureKeepsEarlierError(t *testing.T) {
	desk := newDesktop()
	desk.FailForeground = map[model.Handle]error{target: errors.New("denied")}
	desk.FailDetach = errors.New("stuck")

	err := NewController(desk, desk).ForceForeground(context.Background(), target)
	assert.ErrorIs(t, err, ErrForegroundFailed)
	assert.ErrorIs(t, err, ErrDetachFailed)
}

func TestForceForegroundStaleHandle(t *testing.T) {
	desk := newDesktop()
	err := NewController(desk, desk).ForceForeground(context.Background(), 0xdead)
	assert.ErrorIs(t, err, ErrAttachFailed)
	assert.ErrorIs(t, err, platform.ErrInvalidHandle)
	assert.Empty(t, desk.Calls())
}

func TestForceForegroundOwnThread(t *testing.T) {
	desk := fake.New(fake.Window{Handle: target, Title: "host", Visible: true, TID: 1})
	require.NoError(t, NewController(desk, desk).ForceForeground(context.Background(), target))
	assert.Equal(t, []string{"restore 0x42", "foreground 0x42"}, desk.Calls())
}
