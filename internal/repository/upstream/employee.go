package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
)

func (c *Client) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var payload []userDTO
	if err := c.getJSON(ctx, "/users", nil, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return []employee.Employee{}, nil
		}
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(payload))
	for _, p := range payload {
		employees = append(employees, p.toEmployee())
	}
	return employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	var payload userDTO
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(id), nil, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return payload.toEmployee(), nil
}
