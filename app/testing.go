package app

import (
	"context"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"domain-expiry-checker/internal/common"
)

// TestApplication runs the full graph under fxtest, with extra options
// (fx.Decorate, fx.Supply, fx.Populate) layered on top.
type TestApplication struct {
	tb      testing.TB
	options *common.ServiceOptions
	extra   []fx.Option
	testApp *fxtest.App
	job     job
}

func NewTestApplication(tb testing.TB, opts ...common.Option) *TestApplication {
	return &TestApplication{
		tb:      tb,
		options: common.NewServiceOptions(opts...),
	}
}

func (ta *TestApplication) WithOption(opt fx.Option) *TestApplication {
	ta.extra = append(ta.extra, opt)
	return ta
}

func (ta *TestApplication) build() {
	if ta.testApp != nil {
		return
	}

	testOptions := []fx.Option{
		Modules(ta.options),
		captureJob(&ta.job),
	}
	testOptions = append(testOptions, ta.extra...)
	testOptions = append(testOptions,
		fx.StartTimeout(10*time.Second),
		fx.StopTimeout(10*time.Second),
	)

	ta.testApp = fxtest.New(ta.tb, testOptions...)
}

// Run starts the graph, performs one check run at the configured clock and
// stops the graph. Start and stop failures fail the test.
func (ta *TestApplication) Run(ctx context.Context) error {
	ta.build()

	ta.testApp.RequireStart()
	defer ta.testApp.RequireStop()

	return ta.job.execute(ctx, ta.options.Now())
}
