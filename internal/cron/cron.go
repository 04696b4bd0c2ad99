package cron

import (
	"context"

	"orgchart/config"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewIntegrityJob)

// DefaultIntegritySpec 每 10 分鐘（含秒欄位）
const DefaultIntegritySpec = "0 */10 * * * *"

type Cron struct {
	conf         *config.Configuration
	logger       *zap.Logger
	server       *cron.Cron
	integrityJob *IntegrityJob
}

// NewCron .
func NewCron(conf *config.Configuration, logger *zap.Logger, integrityJob *IntegrityJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		conf:         conf,
		logger:       logger,
		server:       server,
		integrityJob: integrityJob,
	}
}

func (c *Cron) Run() error {
	if c.conf.Cron.IntegrityEnabled {
		spec := c.conf.Cron.IntegritySpec
		if spec == "" {
			spec = DefaultIntegritySpec
		}
		if _, err := c.server.AddJob(spec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(c.integrityJob)); err != nil {
			return err
		}
		c.logger.Info("integrity job scheduled", zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

// Stop 等待執行中的 job 結束或 ctx 逾時
func (c *Cron) Stop(ctx context.Context) error {
	done := c.server.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Entries 目前排程的 job 數
func (c *Cron) Entries() int {
	return len(c.server.Entries())
}
