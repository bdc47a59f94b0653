package bootstrap

import (
	"context"
	"testing"

	"go-ats/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := NewZapAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "req-9")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithCompanyID(ctx, "company-1")

	audit.Log(ctx, AuditLog{
		Action:  "OFFER_LETTER_SENT",
		Message: "offer letter sent",
		Meta:    map[string]any{"offer_number": "OFR-000012", "candidate_id": "cand-1"},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	assert.Equal(t, "offer letter sent", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "OFFER_LETTER_SENT", fields["action"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "user-1", fields["actor_id"])
	assert.Equal(t, "company-1", fields["company_id"])
	assert.Equal(t, "OFR-000012", fields["meta.offer_number"])

	keys := make([]string, 0, len(entry.Context))
	for _, f := range entry.Context {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"action", "request_id", "actor_id", "company_id", "meta.candidate_id", "meta.offer_number"}, keys)
}

func TestZapAuditLogger_NoRequestContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewZapAuditLogger(zap.New(core)).Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"signal": "terminated"},
	})

	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "request_id")
	assert.NotContains(t, fields, "actor_id")
	assert.Equal(t, "terminated", fields["meta.signal"])
}
