package cmd

import (
	"context"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/mj1618/organizer-cli/internal/events"
	"github.com/mj1618/organizer-cli/internal/organizer"
	"github.com/mj1618/organizer-cli/internal/platform"
)

// newProvider is replaced in tests.
var newProvider = platform.NewProvider

// logEmitter records events in the debug log. One-shot commands have no
// listener for them.
var logEmitter = events.EmitterFunc(func(ctx context.Context, ev events.Event) error {
	logger.Debugf(ctx, "event %s: %+v", ev.Name, ev.Payload)
	return nil
})

// newService builds the organizer service from the loaded configuration.
func newService(emitter events.Emitter) (*organizer.Service, error) {
	provider, err := newProvider()
	if err != nil {
		return nil, err
	}
	opts, err := organizer.OptionsFromConfig(appConfig)
	if err != nil {
		return nil, err
	}
	return organizer.New(provider, emitter, opts), nil
}
