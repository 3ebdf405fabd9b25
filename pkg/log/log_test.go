package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForContext(t *testing.T) {
	SetupTestLogger()
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, correlationID := WithCorrelationID(context.Background())
	require.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))

	ForContext(ctx).WithField("barber_id", "lele").Warn("aviso")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, correlationID, entry.Data["correlation_id"])
	assert.Equal(t, "lele", entry.Data["barber_id"])
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Configure("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Configure("nao-existe")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestGetCorrelationIDSemValor(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
}
