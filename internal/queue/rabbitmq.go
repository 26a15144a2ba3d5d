package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQBroker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	maxRetries int
	mu         sync.RWMutex
}

type Config struct {
	URL           string
	MaxRetries    int
	PrefetchCount int
}

// NewRabbitMQBroker connects, applies QoS, and declares the given work
// queues together with their dead-letter counterparts ("<name>-dlq").
func NewRabbitMQBroker(cfg Config, queues []string) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.Qos(cfg.PrefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	broker := &RabbitMQBroker{
		conn:       conn,
		channel:    channel,
		maxRetries: maxRetries,
	}

	for _, queueName := range queues {
		for _, name := range []string{queueName, queueName + "-dlq"} {
			if err := broker.declareQueue(name); err != nil {
				broker.Close()
				return nil, err
			}
		}
	}

	return broker, nil
}

func (b *RabbitMQBroker) declareQueue(queueName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return nil
}

func (b *RabbitMQBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	err := b.channel.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         message,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (b *RabbitMQBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	msgs, err := b.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				b.handleMessage(ctx, msg, handler, queueName)
			}
		}
	}()

	return nil
}

// handleMessage acks the delivery and, on handler failure, either requeues
// it with an incremented retry header and exponential backoff or, past the
// retry budget, parks it in the queue's DLQ with the error attached.
func (b *RabbitMQBroker) handleMessage(ctx context.Context, msg amqp.Delivery, handler MessageHandler, queueName string) {
	err := handler(ctx, msg.Body)
	if err == nil {
		msg.Ack(false)
		return
	}

	retryCount := 0
	if msg.Headers != nil {
		if count, ok := msg.Headers["x-retry-count"].(int32); ok {
			retryCount = int(count)
		}
	}

	if retryCount < b.maxRetries {
		// 2^retryCount seconds between attempts
		time.Sleep(time.Duration(1<<retryCount) * time.Second)

		b.mu.RLock()
		_ = b.channel.PublishWithContext(
			ctx,
			"",
			queueName,
			false,
			false,
			amqp.Publishing{
				DeliveryMode: amqp.Persistent,
				ContentType:  msg.ContentType,
				Body:         msg.Body,
				Headers: amqp.Table{
					"x-retry-count": int32(retryCount + 1),
				},
				Timestamp: time.Now(),
			},
		)
		b.mu.RUnlock()

		msg.Ack(false)
		return
	}

	b.mu.RLock()
	_ = b.channel.PublishWithContext(
		ctx,
		"",
		queueName+"-dlq",
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  msg.ContentType,
			Body:         msg.Body,
			Headers: amqp.Table{
				"x-original-queue": queueName,
				"x-retry-count":    int32(retryCount),
				"x-error":          err.Error(),
			},
			Timestamp: time.Now(),
		},
	)
	b.mu.RUnlock()

	msg.Ack(false)
}

func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
