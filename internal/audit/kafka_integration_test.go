//go:build integration

package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"identitychain/internal/platform/kafka/producer"
	"identitychain/pkg/testutil/containers"
)

func TestPublisher_KafkaIntegration(t *testing.T) {
	kc := containers.NewKafkaContainer(t)
	ctx := context.Background()

	const topic = "identitychain.ledger.audit"
	require.NoError(t, kc.CreateTopic(ctx, topic, 1, 1))

	prod, err := producer.New(producer.Config{Brokers: kc.Brokers, Retries: 3}, slog.Default())
	require.NoError(t, err)
	defer prod.Close()

	store := NewInMemoryStore()
	pub := NewPublisher(store, slog.Default(), WithKafka(prod, topic))

	event := Event{
		Txn:          "NYM",
		SubmitterDID: "V4SGRU86Z58d6TV7PBUe6f",
		Target:       "FYmoFw55GeQH7SRFa37dkx",
		RequestID:    "req-1",
	}
	require.NoError(t, pub.Emit(ctx, event))

	consumer, err := kc.NewConsumer("audit-test", topic)
	require.NoError(t, err)
	defer consumer.Close()

	record := kc.WaitForMessage(ctx, consumer, 30*time.Second, func(r *kgo.Record) bool {
		return string(r.Key) == event.SubmitterDID
	})
	require.NotNil(t, record, "expected audit event on topic")

	var decoded Event
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	require.Equal(t, "NYM", decoded.Txn)
	require.Equal(t, "req-1", decoded.RequestID)
}
