package kafka

import (
	"time"

	"github.com/Astemirdum/library-engine/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const LoanTopic = "library.loans"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"library.loans"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type EventType string

const (
	EventLoanIssued      EventType = "loan.issued"
	EventLoanReturned    EventType = "loan.returned"
	EventCatalogReloaded EventType = "catalog.reloaded"
)

// Event is a loan lifecycle notification. Only the fields relevant to the
// event type are set.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	StudentID string    `json:"studentId,omitempty"`
	BookID    int       `json:"bookId,omitempty"`
	LoanID    int       `json:"loanId,omitempty"`
	Loaded    int       `json:"loaded,omitempty"`
	Skipped   int       `json:"skipped,omitempty"`
}

type Publisher interface {
	Publish(ev Event) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

// NewPublisher sends events synchronously. A failing broker opens the breaker
// so that loan operations are not slowed down by repeated timeouts.
func NewPublisher(producer sarama.SyncProducer, topic string) Publisher {
	if topic == "" {
		topic = LoanTopic
	}
	return &publisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(10, 30*time.Second, 0.5, 3),
	}
}

func (p *publisher) Publish(ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Type),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		_, _, err := p.producer.SendMessage(msg)
		return err
	})
}

type nopPublisher struct {
	log *zap.Logger
}

// NewNopPublisher is used when no brokers are configured.
func NewNopPublisher(log *zap.Logger) Publisher {
	return &nopPublisher{log: log.Named("events")}
}

func (p *nopPublisher) Publish(ev Event) error {
	p.log.Debug("event", zap.String("type", string(ev.Type)), zap.Int("loan_id", ev.LoanID), zap.Int("book_id", ev.BookID))
	return nil
}
