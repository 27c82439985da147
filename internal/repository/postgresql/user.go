package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type userRepositoryImpl struct {
	db *database.DB
}

const userSelect = `
	SELECT id::text, COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(email, ''), phone,
		   COALESCE(position, ''), COALESCE(department, ''), UPPER(COALESCE(role, '')), COALESCE(active, true)
	FROM users
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var (
		e     employee.Employee
		phone pgtype.Text
	)
	if err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &phone, &e.Position, &e.Department, &e.Role, &e.Active); err != nil {
		return employee.Employee{}, err
	}
	e.Phone = textPtr(phone)
	return e, nil
}

// ListEmployees implements employee.Source.
func (r *userRepositoryImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, userSelect+` ORDER BY last_name, first_name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return employees, nil
}

// GetEmployee implements employee.Source.
func (r *userRepositoryImpl) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, userSelect+` WHERE id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return e, nil
}

func NewUserRepository(db *database.DB) employee.Source {
	return &userRepositoryImpl{db: db}
}
