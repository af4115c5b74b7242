package sqlstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

func statement() (string, int64) {
	return "SELECT * FROM `transactions`", 3
}

// entries decodes the JSON lines written to buf.
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}

		var entry map[string]any
		require.Nil(t, json.Unmarshal(line, &entry), "invalid log line %q", line)
		out = append(out, entry)
	}

	return out
}

func TestLoggerLevelFromZerolog(t *testing.T) {
	assert.Equal(t, gorm_logger.Info, newLogger(zerolog.New(nil).Level(zerolog.DebugLevel)).level)
	assert.Equal(t, gorm_logger.Warn, newLogger(zerolog.New(nil).Level(zerolog.InfoLevel)).level)
}

func TestLoggerLogMode(t *testing.T) {
	l := newLogger(zerolog.New(nil).Level(zerolog.InfoLevel))

	silent := l.LogMode(gorm_logger.Silent)
	assert.Equal(t, gorm_logger.Silent, silent.(*logger).level)
	assert.Equal(t, gorm_logger.Warn, l.level, "LogMode must not modify the receiver")
}

func TestLoggerTrace(t *testing.T) {
	tests := []struct {
		name    string
		level   gorm_logger.LogLevel
		begin   time.Time
		err     error
		zlevel  string
		message string
	}{
		{"Error", gorm_logger.Error, time.Now(), errors.New("no such table"), "error", "[GORM] query error"},
		{"Slow query", gorm_logger.Warn, time.Now().Add(-time.Second), nil, "warn", "[GORM] slow query"},
		{"Every statement", gorm_logger.Info, time.Now(), nil, "debug", "[GORM] query"},
		{"Not found is no error", gorm_logger.Info, time.Now(), gorm.ErrRecordNotFound, "debug", "[GORM] query"},
		{"Fast query below info", gorm_logger.Warn, time.Now(), nil, "", ""},
		{"Slow query below warn", gorm_logger.Error, time.Now().Add(-time.Second), nil, "", ""},
		{"Silent", gorm_logger.Silent, time.Now(), errors.New("no such table"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(zerolog.New(&buf)).LogMode(tt.level)

			l.Trace(t.Context(), tt.begin, statement, tt.err)

			logged := entries(t, &buf)
			if tt.message == "" {
				assert.Empty(t, logged)
				return
			}

			require.Len(t, logged, 1)
			assert.Equal(t, tt.zlevel, logged[0]["level"])
			assert.Equal(t, tt.message, logged[0]["message"])
			assert.Equal(t, "SELECT * FROM `transactions`", logged[0]["sql"])
			assert.Equal(t, float64(3), logged[0]["rows"])
		})
	}
}

func TestLoggerMessages(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(zerolog.New(&buf)).LogMode(gorm_logger.Warn)

	l.Info(t.Context(), "opened %s", "db")
	l.Warn(t.Context(), "deprecated %s", "option")
	l.Error(t.Context(), "failed %d", 1)

	logged := entries(t, &buf)
	require.Len(t, logged, 2)
	assert.Equal(t, "deprecated option", logged[0]["message"])
	assert.Equal(t, "failed 1", logged[1]["message"])
}
