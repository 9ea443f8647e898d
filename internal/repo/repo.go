package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

// Case is a saved calculation: the inputs an engineer entered and the
// coefficients computed from them at save time.
type Case struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Input   seal.Input  `json:"input"`
	Result  seal.Result `json:"result"`
	SavedAt time.Time   `json:"saved_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveCase(ctx context.Context, userID int, c Case) (int, error)
	ListCases(ctx context.Context, userID int) ([]Case, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveCase(ctx context.Context, userID int, c Case) (int, error) {
	input, err := json.Marshal(c.Input)
	if err != nil {
		return 0, err
	}
	result, err := json.Marshal(c.Result)
	if err != nil {
		return 0, err
	}
	var id int
	query := "INSERT INTO seal_cases (user_id, name, input, result, saved_at) VALUES ($1, $2, $3, $4, now()) RETURNING id"
	err = r.db.QueryRowContext(ctx, query, userID, c.Name, input, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCases(ctx context.Context, userID int) ([]Case, error) {
	query := "SELECT id, name, input, result, saved_at FROM seal_cases WHERE user_id=$1 ORDER BY saved_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []Case
	for rows.Next() {
		var (
			c      Case
			input  []byte
			result []byte
		)
		if err := rows.Scan(&c.ID, &c.Name, &input, &result, &c.SavedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(input, &c.Input); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(result, &c.Result); err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, rows.Err()
}
