package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
)

const modelColumns = `credential_id, model_id, enabled, priority, quota_limit, quota_used, window_reset_at, last_used_at, consecutive_failures`

func scanModel(row interface{ Scan(...any) error }) (credential.Model, error) {
	var m credential.Model
	var lastUsed sql.NullTime
	err := row.Scan(
		&m.CredentialID, &m.ModelID, &m.Enabled, &m.Priority,
		&m.QuotaLimit, &m.QuotaUsed, &m.WindowResetAt, &lastUsed, &m.ConsecutiveFailures,
	)
	if lastUsed.Valid {
		m.LastUsedAt = lastUsed.Time
	}
	return m, err
}

// CreateModels batch-inserts the model rows for a new credential.
func (r *implRepository) CreateModels(ctx context.Context, models []credential.Model) error {
	if len(models) == 0 {
		return nil
	}

	var values []string
	var args []any
	idx := 1
	for _, m := range models {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, 0, $%d, NULL, 0)",
			idx, idx+1, idx+2, idx+3, idx+4, idx+5))
		args = append(args, m.CredentialID, m.ModelID, m.Enabled, m.Priority, m.QuotaLimit, m.WindowResetAt)
		idx += 6
	}

	query := fmt.Sprintf(`
		INSERT INTO ai_credential_models (credential_id, model_id, enabled, priority, quota_limit, quota_used, window_reset_at, last_used_at, consecutive_failures)
		VALUES %s`, strings.Join(values, ", "))

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.CreateModels: %v", err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// ListModels returns the model rows of one credential in priority order.
func (r *implRepository) ListModels(ctx context.Context, credentialID string) ([]credential.Model, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM ai_credential_models WHERE credential_id = $1 ORDER BY priority ASC, model_id ASC`,
		modelColumns,
	)

	rows, err := r.db.QueryContext(ctx, query, credentialID)
	if err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.ListModels: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var models []credential.Model
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		models = append(models, m)
	}
	return models, rows.Err()
}

// GetOneModel retrieves one model row; zero value when not found.
func (r *implRepository) GetOneModel(ctx context.Context, credentialID, modelID string) (credential.Model, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM ai_credential_models WHERE credential_id = $1 AND model_id = $2`,
		modelColumns,
	)

	m, err := scanModel(r.db.QueryRowContext(ctx, query, credentialID, modelID))
	if err == sql.ErrNoRows {
		return credential.Model{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.GetOneModel: %v", err)
		return credential.Model{}, repo.ErrFailedToGet
	}
	return m, nil
}

// SetModelEnabled flips one model's enabled flag.
func (r *implRepository) SetModelEnabled(ctx context.Context, credentialID, modelID string, enabled bool) error {
	const query = `UPDATE ai_credential_models SET enabled = $1 WHERE credential_id = $2 AND model_id = $3`
	if _, err := r.db.ExecContext(ctx, query, enabled, credentialID, modelID); err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.SetModelEnabled: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// SetExclusiveModel enables exactly one model on the credential and
// disables the rest, in a single statement (legacy single-model keys).
func (r *implRepository) SetExclusiveModel(ctx context.Context, credentialID, modelID string) error {
	const query = `UPDATE ai_credential_models SET enabled = (model_id = $2) WHERE credential_id = $1`
	if _, err := r.db.ExecContext(ctx, query, credentialID, modelID); err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.SetExclusiveModel: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateModelUsage writes post-routing counter state back to the row.
func (r *implRepository) UpdateModelUsage(ctx context.Context, opt repo.UpdateModelUsageOptions) error {
	const query = `
		UPDATE ai_credential_models
		SET quota_used = $3,
		    window_reset_at = $4,
		    consecutive_failures = $5,
		    last_used_at = CASE WHEN $6 THEN NOW() ELSE last_used_at END
		WHERE credential_id = $1 AND model_id = $2`

	_, err := r.db.ExecContext(ctx, query,
		opt.CredentialID, opt.ModelID, opt.QuotaUsed, opt.WindowResetAt,
		opt.ConsecutiveFailures, opt.MarkUsed,
	)
	if err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.UpdateModelUsage: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListCandidates joins enabled credentials with their enabled models. The
// ORDER BY makes the candidate order a total order: ties on priority fall
// back to IDs, so identical registry state always yields identical order.
func (r *implRepository) ListCandidates(ctx context.Context, opt repo.ListCandidatesOptions) ([]credential.Candidate, error) {
	query := `
		SELECT c.id, c.secret, m.model_id, c.priority, m.priority,
		       m.quota_limit, m.quota_used, m.window_reset_at, m.consecutive_failures
		FROM ai_credentials c
		JOIN ai_credential_models m ON m.credential_id = c.id
		WHERE c.company_id = $1 AND c.enabled = TRUE AND m.enabled = TRUE`
	args := []any{opt.CompanyID}

	if opt.CredentialID != "" {
		query += ` AND c.id = $2`
		args = append(args, opt.CredentialID)
	}
	query += ` ORDER BY c.priority ASC, m.priority ASC, c.id ASC, m.model_id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.ListCandidates: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var candidates []credential.Candidate
	for rows.Next() {
		var c credential.Candidate
		if err := rows.Scan(
			&c.CredentialID, &c.Secret, &c.ModelID, &c.CredentialPriority, &c.ModelPriority,
			&c.QuotaLimit, &c.QuotaUsed, &c.WindowResetAt, &c.ConsecutiveFailures,
		); err != nil {
			return nil, repo.ErrFailedToList
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
