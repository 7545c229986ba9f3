package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	models "luxe-living/model"
)

// LeadRow identifies a stored submission.
type LeadRow struct {
	ID        string
	CreatedAt time.Time
}

// PostgresStore is a Store backed by Postgres.
type PostgresStore struct {
	DB *sql.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	DB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := DB.Ping(); err != nil {
		return nil, err
	}
	return &PostgresStore{DB: DB}, nil
}

func (s *PostgresStore) Close() error { return s.DB.Close() }

// Migrate applies the schema. Every statement is idempotent.
func (s *PostgresStore) Migrate(ctx context.Context, schema string) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveContact(ctx context.Context, id string, req models.ContactRequest) (LeadRow, error) {
	var row LeadRow
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO contact_messages (id, name, email, phone, subject, message) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		id, req.Name, req.Email, nullable(req.Phone), req.Subject, req.Message,
	).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return LeadRow{}, fmt.Errorf("save contact: %w", err)
	}
	return row, nil
}

func (s *PostgresStore) SaveCustomRequest(ctx context.Context, id string, req models.CustomRequest) (LeadRow, error) {
	var row LeadRow
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO custom_requests
			(id, name, email, phone, furniture_type, wood_type, fabric, size, budget, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, id, req.Name, req.Email, req.Phone, req.FurnitureType, req.WoodType,
		nullable(req.Fabric), req.Size, req.Budget, req.Description,
	).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return LeadRow{}, fmt.Errorf("save custom request: %w", err)
	}
	return row, nil
}

func (s *PostgresStore) Subscribe(ctx context.Context, id string, sub models.Subscription) (LeadRow, error) {
	var row LeadRow
	// the no-op update makes RETURNING yield the existing row on conflict
	err := s.DB.QueryRowContext(ctx, `
		INSERT INTO newsletter_subscriptions (id, email) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, created_at
	`, id, sub.Email).Scan(&row.ID, &row.CreatedAt)
	if err != nil {
		return LeadRow{}, fmt.Errorf("subscribe: %w", err)
	}
	return row, nil
}

// nullable maps an empty optional field to NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
