package events

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"venue-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

type session struct {
	conn io.Closer
	ch   channel
}

func (s *session) close() {
	_ = s.ch.Close()
	_ = s.conn.Close()
}

// AMQPPublisher publishes to a durable topic exchange. A channel dropped by
// the broker is replaced on the next publish.
type AMQPPublisher struct {
	mu       sync.Mutex
	dial     func() (*session, error)
	sess     *session
	exchange string
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		dial:     func() (*session, error) { return dialSession(url, exchange) },
		exchange: exchange,
	}
	if err := p.reconnect(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialSession(url, exchange string) (*session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}

	closed := ch.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		if reason, ok := <-closed; ok && reason != nil {
			slog.Warn("rabbitmq channel closed", "error", reason.Error())
		}
	}()
	return &session{conn: conn, ch: ch}, nil
}

func (p *AMQPPublisher) reconnect() error {
	if p.sess != nil {
		p.sess.close()
		p.sess = nil
	}
	s, err := p.dial()
	if err != nil {
		return err
	}
	p.sess = s
	return nil
}

// Publish sends a persistent JSON message routed by topic. A channel must
// not be shared by concurrent publishers.
func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess == nil || p.sess.ch.IsClosed() {
		if err := p.reconnect(); err != nil {
			return errs.Wrap(err, "reconnect rabbitmq")
		}
		slog.Info("rabbitmq channel reopened", "exchange", p.exchange)
	}

	err := p.sess.ch.PublishWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         payload,
	})
	if err != nil {
		return errs.Wrap(err, "publish "+topic)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sess == nil {
		return nil
	}
	_ = p.sess.ch.Close()
	err := p.sess.conn.Close()
	p.sess = nil
	return err
}
