package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{
			name:    "유효한 설정",
			opts:    Options{Name: "farchievements-server"},
			wantErr: false,
		},
		{
			name:    "Name 누락",
			opts:    Options{},
			wantErr: true,
		},
		{
			name:    "음수 MaxAge",
			opts:    Options{Name: "app", MaxAge: -1},
			wantErr: true,
		},
		{
			name:    "음수 MaxSizeMB",
			opts:    Options{Name: "app", MaxSizeMB: -1},
			wantErr: true,
		},
		{
			name:    "음수 MaxBackups",
			opts:    Options{Name: "app", MaxBackups: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptions_Validate_DirIsFile(t *testing.T) {
	// 이미 파일로 존재하는 경로를 Dir로 지정하면 실패해야 한다.
	dir := t.TempDir()
	filePath := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(filePath, nil, 0644))

	opts := Options{Name: "app", Dir: filePath}
	assert.Error(t, opts.Validate())
}

func TestProfiles(t *testing.T) {
	prod := NewProductionOptions("farchievements-server")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)

	dev := NewDevelopmentOptions("farchievements-server")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.False(t, dev.EnableCriticalLog)
	assert.True(t, dev.EnableConsoleLog)
}

func TestHook_LevelRouting(t *testing.T) {
	mainBuf := new(bytes.Buffer)
	criticalBuf := new(bytes.Buffer)
	verboseBuf := new(bytes.Buffer)

	h := &hook{
		mainWriter:     mainBuf,
		criticalWriter: criticalBuf,
		verboseWriter:  verboseBuf,
		formatter:      &logrus.TextFormatter{DisableColors: true},
	}

	fire := func(level Level, msg string) {
		entry := logrus.NewEntry(logrus.New())
		entry.Level = level
		entry.Message = msg
		require.NoError(t, h.Fire(entry))
	}

	fire(ErrorLevel, "error-msg")
	fire(InfoLevel, "info-msg")
	fire(DebugLevel, "debug-msg")

	// Error: Critical + Main 모두 기록
	assert.Contains(t, criticalBuf.String(), "error-msg")
	assert.Contains(t, mainBuf.String(), "error-msg")

	// Info: Main에만 기록
	assert.Contains(t, mainBuf.String(), "info-msg")
	assert.NotContains(t, criticalBuf.String(), "info-msg")

	// Debug: Verbose에만 기록 (Main 오염 방지)
	assert.Contains(t, verboseBuf.String(), "debug-msg")
	assert.NotContains(t, mainBuf.String(), "debug-msg")
}

func TestHook_ClosedRejectsWrites(t *testing.T) {
	mainBuf := new(bytes.Buffer)
	h := &hook{
		mainWriter: mainBuf,
		formatter:  &logrus.TextFormatter{DisableColors: true},
	}

	require.NoError(t, h.Close())

	entry := logrus.NewEntry(logrus.New())
	entry.Level = InfoLevel
	entry.Message = "after-close"
	require.NoError(t, h.Fire(entry))

	assert.Empty(t, mainBuf.String())
}

func TestCloser_Idempotent(t *testing.T) {
	c := &closer{hook: &hook{}}

	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close(), "두 번째 Close()는 즉시 nil을 반환해야 함")
}

func TestWithComponentAndFields(t *testing.T) {
	entry := WithComponentAndFields("api.service", Fields{"port": 3000})

	assert.Equal(t, "api.service", entry.Data["component"])
	assert.Equal(t, 3000, entry.Data["port"])
}
