package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-engine/library/internal/model"
	"github.com/Astemirdum/library-engine/library/internal/repository"
	"github.com/Astemirdum/library-engine/pkg/kafka"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Match(hash, password string) bool
}

type Service struct {
	log         *zap.Logger
	repo        repository.Repository
	hasher      PasswordHasher
	publisher   kafka.Publisher
	strictIssue bool
	now         func() time.Time
}

type Option func(*Service)

func WithPublisher(p kafka.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithStrictIssue rejects issuing a book that already has an outstanding loan.
func WithStrictIssue(strict bool) Option {
	return func(s *Service) { s.strictIssue = strict }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Repository, hasher PasswordHasher, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:         log.Named("service"),
		repo:        repo,
		hasher:      hasher,
		strictIssue: true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = kafka.NewNopPublisher(log)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.NewDate(s.now())
}

// publish never fails the caller, the store is the source of truth.
func (s *Service) publish(ev kafka.Event) {
	ev.Timestamp = s.now().UTC()
	if err := s.publisher.Publish(ev); err != nil {
		s.log.Warn("publish event", zap.String("type", string(ev.Type)), zap.Error(err))
	}
}
