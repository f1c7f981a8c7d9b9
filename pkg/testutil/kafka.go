package testutil

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/testcontainers/testcontainers-go/modules/kafka"

	pkgkafka "github.com/georgchimion-oss/fraud-scout-lite/pkg/kafka"
)

const kafkaImage = "confluentinc/confluent-local:7.6.1"

// Kafka is a single-broker container terminated when the test ends.
type Kafka struct {
	Container *kafka.KafkaContainer
	Brokers   []string
}

// StartKafka starts a broker and registers its teardown with t.Cleanup.
func StartKafka(ctx context.Context, t *testing.T) *Kafka {
	t.Helper()

	container, err := kafka.Run(ctx, kafkaImage, kafka.WithClusterID("fraudscout-test"))
	if err != nil {
		t.Fatalf("start kafka container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("warning: terminate kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	if err != nil {
		t.Fatalf("kafka brokers: %v", err)
	}
	return &Kafka{Container: container, Brokers: brokers}
}

// Config returns a plaintext client config for the broker.
func (k *Kafka) Config() pkgkafka.Config {
	return pkgkafka.Config{Brokers: k.Brokers, ClientID: "fraudscout-test"}
}

// CreateTopic creates topic through the cluster controller so producers do
// not race auto-creation.
func (k *Kafka) CreateTopic(t *testing.T, topic string, partitions int) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", k.Brokers[0])
	if err != nil {
		t.Fatalf("dial kafka: %v", err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		t.Fatalf("kafka controller: %v", err)
	}
	cc, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		t.Fatalf("dial kafka controller: %v", err)
	}
	defer cc.Close()

	if err := cc.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     partitions,
		ReplicationFactor: 1,
	}); err != nil {
		t.Fatalf("create topic %s: %v", topic, err)
	}
}
