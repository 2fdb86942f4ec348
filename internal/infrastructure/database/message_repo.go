package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"polyglot/internal/domain/entities"
	"polyglot/internal/ports/output"
)

var _ output.MessageSource = (*MessageRepository)(nil)

// MessageRepository reads operator-managed translation overrides from
// PostgreSQL.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// ListMessages returns every translation row, ordered so that merging into
// the catalog is deterministic.
func (r *MessageRepository) ListMessages(ctx context.Context) ([]entities.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, locale, message_id, template, created_at, updated_at
		 FROM translations
		 ORDER BY locale, message_id`)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	var messages []entities.Message
	for rows.Next() {
		var row translationRow
		if err := rows.Scan(&row.ID, &row.Locale, &row.MessageID, &row.Template, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		messages = append(messages, translationToDomain(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate translations: %w", err)
	}
	return messages, nil
}
