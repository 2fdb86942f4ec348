package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"polyglot/internal/domain/entities"
)

// translationRow mirrors one row of the translations table.
type translationRow struct {
	ID        int64
	Locale    string
	MessageID string
	Template  string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func translationToDomain(t translationRow) entities.Message {
	return entities.Message{
		ID:        uint(t.ID),
		Locale:    t.Locale,
		Key:       t.MessageID,
		Template:  t.Template,
		CreatedAt: pgtypeTimestamptzToTime(t.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(t.UpdatedAt),
	}
}
