package client

import (
	"context"
	"orgchart/config"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// FluentdClient implements log shipping using fluent-logger-golang.
// 未設定 FLUENTD__HOST 時為停用狀態，Post 直接略過。
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

// NewFluentdClient creates a new Fluentd forward client.
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (*FluentdClient, func(), error) {
	prefix := "orgchart"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	if config.Fluentd.Host == "" {
		logger.Debug("Fluentd disabled")
		return &FluentdClient{tagPrefix: prefix}, func() {}, nil
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
		// 連線失敗不阻塞請求
		Async: true,
	})
	if err != nil {
		logger.Error("failed to connect to Fluentd", zap.Error(err))
		return nil, nil, err
	}
	c := &FluentdClient{client: f, tagPrefix: prefix}
	cleanup := func() {
		if err := c.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return c, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Tag builds a tag using the configured TagPrefix and provided suffix.
// e.g. suffix="request_log" => "orgchart.request_log"
func (c *FluentdClient) Tag(suffix string) string {
	if c.tagPrefix == "" {
		return suffix
	}
	return c.tagPrefix + "." + suffix
}

func (c *FluentdClient) Enabled() bool {
	return c != nil && c.client != nil
}

// Post sends a record to Fluentd. fluent-logger 會自行加上 TagPrefix。
func (c *FluentdClient) Post(ctx context.Context, tag string, message any) error {
	if !c.Enabled() {
		return nil
	}
	// fluent-logger-golang doesn't support context cancellation directly
	return c.client.Post(tag, message)
}
