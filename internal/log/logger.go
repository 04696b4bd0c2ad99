package log

import (
	"fmt"
	"os"

	"orgchart/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level 全域輸出門檻，設定檔熱更新時透過 SetLevel 調整
var level = zap.NewAtomicLevelAt(zap.InfoLevel)

func parseLevel(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zap.InfoLevel
	}
	return lvl
}

// SetLevel 動態調整 logger 層級（不認得的字串視為 info）
func SetLevel(s string) {
	level.SetLevel(parseLevel(s))
}

func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	// 1) 解析最小輸出層級（作為全域門檻）
	level.SetLevel(parseLevel(conf.Log.Level))

	// 2) Encoder 設定（JSON、ISO8601 時間、caller/level 鍵等）
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encCfg)

	// 3) 分流到 stdout / stderr（同時受全域門檻控制）
	stdoutLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return level.Enabled(l) && l < zapcore.WarnLevel
	})
	stderrLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return level.Enabled(l) && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), stdoutLevel),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), stderrLevel),
	)

	// 4) Options：顯示 caller；stacktrace 只在 Error+ 時出現；每筆帶服務名稱與儲存後端
	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(
			zap.String("service", conf.App.Name),
			zap.String("storage", conf.Storage.Driver),
		),
	}

	logger := zap.New(core, opts...)
	logger.Info(fmt.Sprintf("zap logger set level: %s", level.Level()))

	return logger, nil
}
