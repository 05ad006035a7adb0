package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/elhenawym124-ops/chatai-sub002/internal/credential"
	repo "github.com/elhenawym124-ops/chatai-sub002/internal/credential/repository"
)

const credentialColumns = `id, company_id, display_name, secret, description, enabled, priority, created_at, updated_at`

func scanCredential(row interface{ Scan(...any) error }) (credential.Credential, error) {
	var c credential.Credential
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.DisplayName, &c.Secret, &c.Description,
		&c.Enabled, &c.Priority, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

// CreateCredential inserts a Credential row. Priority is assigned inside
// the statement as max(priority)+1 for the tenant so two concurrent
// creations cannot pick the same rank.
func (r *implRepository) CreateCredential(ctx context.Context, opt repo.CreateCredentialOptions) (credential.Credential, error) {
	const query = `
		INSERT INTO ai_credentials (id, company_id, display_name, secret, description, enabled, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE,
			(SELECT COALESCE(MAX(priority), 0) + 1 FROM ai_credentials WHERE company_id = $2),
			NOW(), NOW())
		RETURNING ` + credentialColumns

	c, err := scanCredential(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.CompanyID, opt.DisplayName, opt.Secret, opt.Description))
	if err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.CreateCredential: %v", err)
		return credential.Credential{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneCredential retrieves a single Credential by the provided filters
// (AND condition). Returns zero-value Credential (ID == "") when not found.
func (r *implRepository) GetOneCredential(ctx context.Context, opt repo.GetOneCredentialOptions) (credential.Credential, error) {
	mods, args := buildGetOneCredentialQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM ai_credentials WHERE %s LIMIT 1", credentialColumns, mods)

	c, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return credential.Credential{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.GetOneCredential: %v", err)
		return credential.Credential{}, repo.ErrFailedToGet
	}
	return c, nil
}

func buildGetOneCredentialQuery(opt repo.GetOneCredentialOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.CompanyID != "" {
		conditions = append(conditions, fmt.Sprintf("company_id = $%d", idx))
		args = append(args, opt.CompanyID)
		idx++
	}
	if opt.DisplayName != "" {
		conditions = append(conditions, fmt.Sprintf("display_name = $%d", idx))
		args = append(args, opt.DisplayName)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// ListCredentials returns all credentials for a tenant in priority order.
func (r *implRepository) ListCredentials(ctx context.Context, companyID string) ([]credential.Credential, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM ai_credentials WHERE company_id = $1 ORDER BY priority ASC, id ASC`,
		credentialColumns,
	)

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.ListCredentials: %v", err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var credentials []credential.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		credentials = append(credentials, c)
	}
	return credentials, rows.Err()
}

// SetCredentialEnabled flips the enabled flag.
func (r *implRepository) SetCredentialEnabled(ctx context.Context, credentialID string, enabled bool) error {
	const query = `UPDATE ai_credentials SET enabled = $1, updated_at = NOW() WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, enabled, credentialID); err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.SetCredentialEnabled: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteCredential removes a credential; model rows cascade via FK.
func (r *implRepository) DeleteCredential(ctx context.Context, credentialID string) error {
	const query = `DELETE FROM ai_credentials WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, credentialID); err != nil {
		r.l.Errorf(ctx, "credential/repository/postgre.DeleteCredential: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}
