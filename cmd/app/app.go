package main

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"orgchart/config"
	"orgchart/internal/cron"
	"orgchart/internal/service"
	"orgchart/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RuntimeInfo struct {
	Env       string        `json:"env"`
	Name      string        `json:"name"`
	Version   string        `json:"version"`
	Storage   string        `json:"storage"`
	GoVersion string        `json:"go_version"`
	StartAt   time.Time     `json:"start_at"`
	Uptime    time.Duration `json:"uptime"`
}

type App struct {
	conf             *config.Configuration
	logger           *zap.Logger
	cronSrv          *cron.Cron
	httpSrv          *http.Server
	trace            *telemetry.Trace
	Router           *gin.Engine
	healthService    *service.HealthService
	hierarchyService *service.HierarchyService

	startAt time.Time   // 程式啟動時間（非環境變數）
	appInfo RuntimeInfo // 版本/環境快照（來源 = conf.App）
}

func newHttpServer(
	conf *config.Configuration,
	router *gin.Engine,
) *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.FormatUint(uint64(conf.App.Port), 10),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func newApp(
	conf *config.Configuration,
	logger *zap.Logger,
	router *gin.Engine,
	httpSrv *http.Server,
	trace *telemetry.Trace,
	healthService *service.HealthService,
	hierarchyService *service.HierarchyService,
	cronSrv *cron.Cron,
) *App {
	startAt := time.Now()
	return &App{
		conf:             conf,
		logger:           logger,
		Router:           router,
		httpSrv:          httpSrv,
		trace:            trace,
		healthService:    healthService,
		hierarchyService: hierarchyService,
		cronSrv:          cronSrv,
		startAt:          startAt,
		appInfo: RuntimeInfo{
			Env:       conf.App.Env,
			Name:      conf.App.Name,
			Version:   conf.App.Version,
			Storage:   conf.Storage.Driver,
			GoVersion: runtime.Version(),
			StartAt:   startAt,
		},
	}
}

func (a *App) Run() error {
	// 1) 啟動時寫入版本/環境資訊
	info := a.appInfo
	a.logger.Info("app runtime info",
		zap.String("env", info.Env),
		zap.String("name", info.Name),
		zap.String("version", info.Version),
		zap.String("storage", info.Storage),
		zap.String("go_version", info.GoVersion),
		zap.Time("start_at", info.StartAt),
	)

	// 2) 儲存體為空時寫入預設 CEO
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	created, err := a.hierarchyService.Bootstrap(ctx)
	if err != nil {
		return err
	}
	if created {
		a.logger.Info("empty storage initialised with default root")
	}

	// 3) /version：回傳 JSON（含 uptime）
	if a.Router != nil {
		a.Router.GET("/version", func(c *gin.Context) {
			resp := a.appInfo
			resp.Uptime = time.Since(a.startAt)
			c.JSON(http.StatusOK, resp)
		})
	}

	// 4) 啟動 HTTP server
	go func() {
		a.logger.Info("http server listening", zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("http server stopped unexpectedly", zap.Error(err))
		}
	}()
	a.healthService.SetReady(true)

	// 5) 啟動 cron
	if err := a.cronSrv.Run(); err != nil {
		return err
	}
	a.logger.Info("cron server started")

	return nil
}

func (a *App) Close(ctx context.Context) error {
	if a.healthService != nil {
		a.healthService.SetReady(false)
	}

	var errs []error
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("http server has been stop")
		}
	}
	if a.cronSrv != nil {
		if err := a.cronSrv.Stop(ctx); err != nil {
			errs = append(errs, err)
		} else {
			a.logger.Info("cron server has been stop")
		}
	}
	if a.trace != nil {
		if err := a.trace.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) Stop(ctx context.Context) error {
	return a.Close(ctx)
}
