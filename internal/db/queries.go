package db

import (
	"context"
	_ "embed"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/socialchef/pantry/internal/metrics"
)

//go:embed schema.sql
var schema string

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// RecipeLog is one append-only audit row.
type RecipeLog struct {
	ID          int64     `json:"id"`
	Ingredients string    `json:"ingredients"`
	ResultText  string    `json:"result_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// EnsureSchema creates the log table when it does not exist yet.
func (q *Queries) EnsureSchema(ctx context.Context) error {
	_, err := q.db.Exec(ctx, schema)
	return err
}

const createRecipeLog = `INSERT INTO recipe_logs (ingredients, result_text)
VALUES ($1, $2)
RETURNING id, ingredients, result_text, created_at`

type CreateRecipeLogParams struct {
	Ingredients string
	ResultText  string
}

func (q *Queries) CreateRecipeLog(ctx context.Context, arg CreateRecipeLogParams) (RecipeLog, error) {
	row := q.db.QueryRow(ctx, createRecipeLog, arg.Ingredients, arg.ResultText)
	var i RecipeLog
	err := row.Scan(&i.ID, &i.Ingredients, &i.ResultText, &i.CreatedAt)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.RecipeLogWritesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	return i, err
}

const getRecipeLog = `SELECT id, ingredients, result_text, created_at
FROM recipe_logs WHERE id = $1`

func (q *Queries) GetRecipeLog(ctx context.Context, id int64) (RecipeLog, error) {
	row := q.db.QueryRow(ctx, getRecipeLog, id)
	var i RecipeLog
	err := row.Scan(&i.ID, &i.Ingredients, &i.ResultText, &i.CreatedAt)
	return i, err
}

const countRecipeLogs = `SELECT count(*) FROM recipe_logs`

func (q *Queries) CountRecipeLogs(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countRecipeLogs).Scan(&n)
	return n, err
}
