package usecase

import (
	"context"
	"strings"

	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase/interfaces"
)

// maxAdvisoryLoad is the threshold beyond which an employee is displayed as
// unavailable. Advisory only: assignment is never blocked by it.
const maxAdvisoryLoad = 5

// IAssignmentUseCase derives the employee-load view over the work item
// collection. There is no separate assignment table; everything is computed
// from the items themselves.

type IAssignmentUseCase interface {
	CurrentLoad(ctx context.Context, employeeID string) (int, error)
	AvailableEmployees(ctx context.Context) ([]entities.EmployeeAvailability, error)
}

type AssignmentUseCase struct {
	items     interfaces.IWorkItemRepository
	employees interfaces.IEmployeeRepository
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(items interfaces.IWorkItemRepository, employees interfaces.IEmployeeRepository) *AssignmentUseCase {
	return &AssignmentUseCase{items: items, employees: employees}
}

// CurrentLoad counts the employee's non-terminal assigned items.
func (u *AssignmentUseCase) CurrentLoad(ctx context.Context, employeeID string) (int, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return 0, ErrInvalidEmployeeID
	}

	emp, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	if emp.ID == "" {
		return 0, ErrEmployeeNotFound
	}

	items, err := u.items.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return countActive(items), nil
}

// AvailableEmployees returns the full workforce with per-employee load and
// the advisory availability flag used by the admin assignment screen.
func (u *AssignmentUseCase) AvailableEmployees(ctx context.Context) ([]entities.EmployeeAvailability, error) {
	employees, err := u.employees.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.EmployeeAvailability, 0, len(employees))
	for _, emp := range employees {
		items, err := u.items.ListByEmployeeID(ctx, emp.ID)
		if err != nil {
			return nil, err
		}
		load := countActive(items)
		name := strings.TrimSpace(emp.FirstName + " " + emp.LastName)
		if name == "" {
			name = "Unknown"
		}
		out = append(out, entities.EmployeeAvailability{
			EmployeeID:  emp.ID,
			Name:        name,
			Email:       emp.Email,
			Role:        emp.Role,
			CurrentLoad: load,
			Available:   load < maxAdvisoryLoad,
		})
	}
	return out, nil
}

func countActive(items []entities.WorkItem) int {
	n := 0
	for _, item := range items {
		if item.Status == entities.StatusAssigned || item.Status == entities.StatusInProgress {
			n++
		}
	}
	return n
}
