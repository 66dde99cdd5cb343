package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/segmentio/kafka-go"
)

func TestNewRedis_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedis(context.Background(), mr.Addr())
	if err != nil {
		t.Fatalf("NewRedis() error = %v", err)
	}
	defer client.Close()
}

func TestNewRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	if _, err := NewRedis(context.Background(), addr); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter([]string{"k1:9092", "k2:9092"}, "railsim.bookings")
	if w.Topic != "railsim.bookings" {
		t.Errorf("Topic = %q", w.Topic)
	}
	if _, ok := w.Balancer.(*kafka.Hash); !ok {
		t.Errorf("Balancer = %T, want *kafka.Hash", w.Balancer)
	}
	if w.Addr == nil || w.Addr.String() != "k1:9092,k2:9092" {
		t.Errorf("Addr = %v", w.Addr)
	}
}
