package store

import (
	"context"
	"log"
	"sync"
	"time"

	models "luxe-living/model"
)

// LogStore writes submissions to a logger instead of a database. It is
// used when no database is configured.
type LogStore struct {
	logger *log.Logger
	now    func() time.Time

	mu          sync.Mutex
	subscribers map[string]LeadRow
}

var _ Store = (*LogStore)(nil)

// NewLogStore returns a LogStore writing to logger, or to the standard
// logger when logger is nil.
func NewLogStore(logger *log.Logger) *LogStore {
	if logger == nil {
		logger = log.Default()
	}
	return &LogStore{logger: logger, now: time.Now, subscribers: map[string]LeadRow{}}
}

func (s *LogStore) SaveContact(ctx context.Context, id string, req models.ContactRequest) (LeadRow, error) {
	if err := ctx.Err(); err != nil {
		return LeadRow{}, err
	}
	phone := req.Phone
	if phone == "" {
		phone = "Not provided"
	}
	s.logger.Printf("new contact submission id=%s name=%q email=%q phone=%q subject=%q message=%q",
		id, req.Name, req.Email, phone, req.Subject, req.Message)
	return LeadRow{ID: id, CreatedAt: s.now()}, nil
}

func (s *LogStore) SaveCustomRequest(ctx context.Context, id string, req models.CustomRequest) (LeadRow, error) {
	if err := ctx.Err(); err != nil {
		return LeadRow{}, err
	}
	fabric := req.Fabric
	if fabric == "" {
		fabric = "Not applicable"
	}
	s.logger.Printf("new custom furniture request id=%s name=%q email=%q phone=%q type=%q wood=%q fabric=%q size=%q budget=%q description=%q",
		id, req.Name, req.Email, req.Phone, req.FurnitureType, req.WoodType, fabric, req.Size, req.Budget, req.Description)
	return LeadRow{ID: id, CreatedAt: s.now()}, nil
}

func (s *LogStore) Subscribe(ctx context.Context, id string, sub models.Subscription) (LeadRow, error) {
	if err := ctx.Err(); err != nil {
		return LeadRow{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.subscribers[sub.Email]; ok {
		return row, nil
	}
	row := LeadRow{ID: id, CreatedAt: s.now()}
	s.subscribers[sub.Email] = row
	s.logger.Printf("newsletter subscription id=%s email=%q", id, sub.Email)
	return row, nil
}

func (s *LogStore) Close() error { return nil }
