package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"godrsa/domain/analysis"
	"godrsa/domain/core"
	"godrsa/ports"
)

// analysisRepository implements the AnalysisRepository interface. The full
// result lives in a JSONB payload; the indexed columns exist for listing and
// lookup without deserializing every row.
type analysisRepository struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *sqlx.DB) ports.AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create inserts an analysis result
func (r *analysisRepository) Create(ctx context.Context, result *analysis.Result) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis payload: %w", err)
	}

	query := `INSERT INTO analyses (
		id, table_id, table_name, table_fingerprint, fingerprint,
		calculator, object_count, quality_of_classification, payload, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
	)`

	_, err = r.db.ExecContext(ctx, query,
		result.ID, result.TableID, result.TableName, result.TableFingerprint, result.Fingerprint,
		result.Calculator, result.ObjectCount, result.QualityOfClassification, payload, result.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// GetByID retrieves an analysis result by its ID
func (r *analysisRepository) GetByID(ctx context.Context, id core.AnalysisID) (*analysis.Result, error) {
	query := `SELECT payload FROM analyses WHERE id = $1`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.NewNotFoundError("analysis", string(id))
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var result analysis.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis payload: %w", err)
	}
	return &result, nil
}

// List retrieves analysis results with pagination, newest first
func (r *analysisRepository) List(ctx context.Context, limit, offset int) ([]*analysis.Result, error) {
	query := `SELECT payload FROM analyses ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var results []*analysis.Result
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		var result analysis.Result
		if err := json.Unmarshal(payload, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis payload: %w", err)
		}
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return results, nil
}

// Delete removes an analysis result by its ID
func (r *analysisRepository) Delete(ctx context.Context, id core.AnalysisID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return core.NewNotFoundError("analysis", string(id))
	}
	return nil
}
