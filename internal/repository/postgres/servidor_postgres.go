package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"servidoc/internal/model"
	"servidoc/internal/repository"
)

// ServidorPostgres is a PostgreSQL implementation of repository.ServidorRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ServidorPostgres struct {
	db *sql.DB
}

// NewServidorPostgres creates a new ServidorPostgres repository.
func NewServidorPostgres(db *sql.DB) *ServidorPostgres {
	return &ServidorPostgres{db: db}
}

var _ repository.ServidorRepository = (*ServidorPostgres)(nil)

// Create inserts a new servidor row and returns the stored record.
// Unique violations are mapped by constraint name so the service layer can
// report which field conflicted.
func (r *ServidorPostgres) Create(ctx context.Context, s *model.Servidor) (*model.Servidor, error) {
	const q = `
		INSERT INTO servidores (id, name, national_id, registration_number, org_code, active, job_title, department, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, national_id, registration_number, org_code, active, job_title, department, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Name,
		s.NationalID,
		s.RegistrationNumber,
		s.OrgCode,
		s.Active,
		s.JobTitle,
		s.Department,
		s.CreatedAt,
	)
	var out model.Servidor
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.NationalID,
		&out.RegistrationNumber,
		&out.OrgCode,
		&out.Active,
		&out.JobTitle,
		&out.Department,
		&out.CreatedAt,
	); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if strings.Contains(constraint, "registration_number") {
				return nil, repository.ErrDuplicateRegistration
			}
			return nil, repository.ErrDuplicateNationalID
		}
		return nil, err
	}
	return &out, nil
}

// Search returns servidores matching the filter, AND-combined, in insertion
// order (created_at, then id). A zero-value filter returns every row.
func (r *ServidorPostgres) Search(ctx context.Context, f repository.ServidorFilter) ([]model.Servidor, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Name != "" {
		add("name ILIKE $%d", "%"+f.Name+"%")
	}
	if f.NationalID != "" {
		add("national_id = $%d", f.NationalID)
	}
	if f.RegistrationNumber != "" {
		add("registration_number = $%d", f.RegistrationNumber)
	}
	if f.OrgCode != "" {
		add("org_code = $%d", f.OrgCode)
	}

	q := `
		SELECT id, name, national_id, registration_number, org_code, active, job_title, department, created_at
		FROM servidores
	`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at, id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Servidor, 0)
	for rows.Next() {
		var s model.Servidor
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.NationalID,
			&s.RegistrationNumber,
			&s.OrgCode,
			&s.Active,
			&s.JobTitle,
			&s.Department,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
