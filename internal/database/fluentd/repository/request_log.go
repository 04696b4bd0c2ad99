package repository

import (
	"context"
	"encoding/json"
	"time"

	"orgchart/config"
	"orgchart/internal/core"
	"orgchart/internal/database/client"
	"orgchart/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Hierarchy Log 到 Fluentd
type LogRepository struct {
	fluentdClient *client.FluentdClient
	version       string
	projectName   string
}

func NewLogRepository(config *config.Configuration, client *client.FluentdClient) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version, projectName: config.App.Name}
}

// post 將 struct 轉成 map 後送出；Fluentd 停用時不做任何事
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	if !repository.fluentdClient.Enabled() {
		return nil
	}
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	if req.LoggedAt == "" {
		req.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if req.Version == "" {
		req.Version = repository.version
	}
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	if resp.LoggedAt == "" {
		resp.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if resp.Version == "" {
		resp.Version = repository.version
	}
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogHierarchyEvent(ctx context.Context, event model.HierarchyEventLog) error {
	if event.LoggedAt == "" {
		event.LoggedAt = time.Now().UTC().Format(loggedAtLayout)
	}
	if event.Version == "" {
		event.Version = repository.version
	}
	if event.ProjectName == "" {
		event.ProjectName = repository.projectName
	}
	return repository.post(ctx, core.FluentdHierarchy, event)
}
