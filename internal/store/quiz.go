package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sahanajogi126/quizforge/internal/quizgen"
)

// ErrNotFound is returned when no quiz matches the requested ID.
var ErrNotFound = errors.New("quiz not found")

// Quiz is one persisted generation run with its items.
type Quiz struct {
	ID         string
	Source     string
	RankMethod string
	Seed       int64
	CreatedAt  time.Time
	Items      []quizgen.QuestionItem
}

// Summary is a quiz row without its items, for listings.
type Summary struct {
	ID        string
	Source    string
	CreatedAt time.Time
	ItemCount int
}

// QuizRepo persists and retrieves generated quizzes.
type QuizRepo interface {
	// Save stores quiz and its items. Assigns a fresh ID when empty.
	Save(ctx context.Context, quiz *Quiz) error

	// Get loads one quiz with its items in stored order.
	Get(ctx context.Context, id string) (*Quiz, error)

	// Latest returns the most recently created quiz, or ErrNotFound.
	Latest(ctx context.Context) (*Quiz, error)

	// List returns summaries newest-first, up to limit (0 = all).
	List(ctx context.Context, limit int) ([]Summary, error)

	// Delete removes a quiz and its items.
	Delete(ctx context.Context, id string) error
}

type quizRepo struct {
	db *sql.DB
}

func (r *quizRepo) Save(ctx context.Context, quiz *Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO quizzes (id, source, rank_method, seed, created_at) VALUES (?, ?, ?, ?, ?)`,
		quiz.ID, quiz.Source, quiz.RankMethod, quiz.Seed, quiz.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quiz: %w", err)
	}

	for i, item := range quiz.Items {
		opts, err := json.Marshal(item.Options)
		if err != nil {
			return fmt.Errorf("marshal options: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO quiz_items (quiz_id, position, type, question, options, answer) VALUES (?, ?, ?, ?, ?, ?)`,
			quiz.ID, i, string(item.Type), item.Question, string(opts), item.Answer,
		)
		if err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (r *quizRepo) Get(ctx context.Context, id string) (*Quiz, error) {
	quiz := &Quiz{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, source, rank_method, seed, created_at FROM quizzes WHERE id = ?`, id,
	).Scan(&quiz.ID, &quiz.Source, &quiz.RankMethod, &quiz.Seed, &quiz.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}

	if err := r.loadItems(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (r *quizRepo) Latest(ctx context.Context) (*Quiz, error) {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM quizzes ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find latest quiz: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *quizRepo) List(ctx context.Context, limit int) ([]Summary, error) {
	query := `
SELECT q.id, q.source, q.created_at, COUNT(i.quiz_id)
FROM quizzes q
LEFT JOIN quiz_items i ON i.quiz_id = q.id
GROUP BY q.id
ORDER BY q.created_at DESC, q.id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Source, &s.CreatedAt, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scan quiz summary: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *quizRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *quizRepo) loadItems(ctx context.Context, quiz *Quiz) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT type, question, options, answer FROM quiz_items WHERE quiz_id = ? ORDER BY position`,
		quiz.ID,
	)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item     quizgen.QuestionItem
			itemType string
			opts     string
		)
		if err := rows.Scan(&itemType, &item.Question, &opts, &item.Answer); err != nil {
			return fmt.Errorf("scan item: %w", err)
		}
		item.Type = quizgen.Type(itemType)
		if err := json.Unmarshal([]byte(opts), &item.Options); err != nil {
			return fmt.Errorf("unmarshal options: %w", err)
		}
		quiz.Items = append(quiz.Items, item)
	}
	return rows.Err()
}
