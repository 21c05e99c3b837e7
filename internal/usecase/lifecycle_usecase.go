package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkItemNotFound     = errors.New("work item not found")
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrInvalidWorkItemID    = errors.New("invalid work item id")
	ErrInvalidEmployeeID    = errors.New("invalid employee id")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidTransition    = errors.New("invalid lifecycle transition")
)

// CreateAppointmentInput is the booking command produced by the customer
// surface. Any client-supplied status is ignored; appointments are always
// admitted in REQUESTING.
type CreateAppointmentInput struct {
	CustomerID  string
	VehicleID   string
	ServiceID   string
	Date        string
	StartTime   string
	Description string
}

// CreateProjectInput is the custom-work command. VehicleID is optional;
// some project flows have no vehicle attached.
type CreateProjectInput struct {
	CustomerID  string
	VehicleID   string
	Title       string
	Description string
	StartDate   string
	EndDate     string
}

// ILifecycleUseCase is the state machine shared by appointments and projects.
//
// Transitions:
//   - create            -> REQUESTING
//   - assign            REQUESTING -> ASSIGNED (reassign keeps the status)
//   - progress > 0      ASSIGNED -> IN_PROGRESS (applied by the progress usecase)
//   - progress == 100   -> COMPLETED
//   - complete          -> COMPLETED
//   - cancel            any non-terminal -> CANCELLED
//
// COMPLETED and CANCELLED are terminal; every mutation on a terminal item
// fails with ErrInvalidTransition.

type ILifecycleUseCase interface {
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (entities.WorkItem, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (entities.WorkItem, error)
	Assign(ctx context.Context, itemID, employeeID string) (entities.WorkItem, error)
	Cancel(ctx context.Context, itemID string) (entities.WorkItem, error)
	Complete(ctx context.Context, itemID string) (entities.WorkItem, error)
	GetByID(ctx context.Context, itemID string) (entities.WorkItem, error)
	ListAll(ctx context.Context) ([]entities.WorkItem, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkItem, error)
	ListAssignedTo(ctx context.Context, employeeID string) ([]entities.WorkItem, error)
	ListByStatus(ctx context.Context, status string) ([]entities.WorkItem, error)
	ListRequesting(ctx context.Context) ([]entities.WorkItem, error)
}

type LifecycleUseCase struct {
	items     interfaces.IWorkItemRepository
	employees interfaces.IEmployeeRepository
	vehicles  interfaces.IVehicleRepository
	services  interfaces.IServiceRepository
	planner   ISlotPlannerUseCase
}

var _ ILifecycleUseCase = (*LifecycleUseCase)(nil)

func NewLifecycleUseCase(
	items interfaces.IWorkItemRepository,
	employees interfaces.IEmployeeRepository,
	vehicles interfaces.IVehicleRepository,
	services interfaces.IServiceRepository,
	planner ISlotPlannerUseCase,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		items:     items,
		employees: employees,
		vehicles:  vehicles,
		services:  services,
		planner:   planner,
	}
}

func (u *LifecycleUseCase) CreateAppointment(ctx context.Context, input CreateAppointmentInput) (entities.WorkItem, error) {
	customerID := strings.TrimSpace(input.CustomerID)
	vehicleID := strings.TrimSpace(input.VehicleID)
	serviceID := strings.TrimSpace(input.ServiceID)
	if customerID == "" || vehicleID == "" || serviceID == "" || strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.StartTime) == "" {
		return entities.WorkItem{}, ErrMissingRequiredField
	}

	v, err := u.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if v.ID == "" {
		return entities.WorkItem{}, ErrVehicleNotFound
	}

	schedule, err := u.planner.PlanSchedule(ctx, serviceID, input.Date, input.StartTime)
	if err != nil {
		return entities.WorkItem{}, err
	}

	// Snapshot the offering so later catalog edits never rewrite history.
	offering, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if offering.ID == "" {
		return entities.WorkItem{}, ErrServiceNotFound
	}

	now := time.Now().UTC()
	item := entities.WorkItem{
		ID:               uuid.NewString(),
		Kind:             entities.KindAppointment,
		CustomerID:       customerID,
		VehicleID:        vehicleID,
		Title:            offering.Name,
		Description:      strings.TrimSpace(input.Description),
		ServiceID:        offering.ID,
		ServicePrice:     offering.Price,
		EstimatedMinutes: offering.EstimatedMinutes,
		Date:             schedule.Date,
		StartTime:        schedule.StartTime,
		EndTime:          schedule.EndTime,
		Status:           entities.StatusRequesting,
		TimerState:       entities.TimerStopped,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	log.Printf("[lifecycle][usecase] creating appointment customer_id=%s service_id=%s date=%s slot=%s", customerID, serviceID, schedule.Date, schedule.StartTime)
	return u.items.Create(ctx, item)
}

func (u *LifecycleUseCase) CreateProject(ctx context.Context, input CreateProjectInput) (entities.WorkItem, error) {
	customerID := strings.TrimSpace(input.CustomerID)
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	startDate := strings.TrimSpace(input.StartDate)
	if customerID == "" || title == "" || description == "" || startDate == "" {
		return entities.WorkItem{}, ErrMissingRequiredField
	}

	now := time.Now().UTC()
	item := entities.WorkItem{
		ID:          uuid.NewString(),
		Kind:        entities.KindProject,
		CustomerID:  customerID,
		VehicleID:   strings.TrimSpace(input.VehicleID),
		Title:       title,
		Description: description,
		Date:        startDate,
		EndDate:     strings.TrimSpace(input.EndDate),
		Status:      entities.StatusRequesting,
		TimerState:  entities.TimerStopped,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	log.Printf("[lifecycle][usecase] creating project customer_id=%s title=%q start_date=%s", customerID, title, startDate)
	return u.items.Create(ctx, item)
}

// Assign binds an employee to a work item. On a REQUESTING item this advances
// the status to ASSIGNED; on an already ASSIGNED or IN_PROGRESS item only the
// employee id changes (reassign). Repeating the call with the same employee
// is a harmless no-op.
func (u *LifecycleUseCase) Assign(ctx context.Context, itemID, employeeID string) (entities.WorkItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return entities.WorkItem{}, ErrInvalidEmployeeID
	}

	item, err := u.loadMutable(ctx, itemID)
	if err != nil {
		return entities.WorkItem{}, err
	}

	emp, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if emp.ID == "" {
		return entities.WorkItem{}, ErrEmployeeNotFound
	}

	item.AssignedEmployeeID = emp.ID
	if item.Status == entities.StatusRequesting {
		item.Status = entities.StatusAssigned
	}
	item.UpdatedAt = time.Now().UTC()
	log.Printf("[lifecycle][usecase] assign item_id=%s employee_id=%s status=%s", item.ID, emp.ID, item.Status)
	return u.items.Update(ctx, item)
}

func (u *LifecycleUseCase) Cancel(ctx context.Context, itemID string) (entities.WorkItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}

	item, err := u.loadMutable(ctx, itemID)
	if err != nil {
		return entities.WorkItem{}, err
	}

	item.Status = entities.StatusCancelled
	item.TimerState = entities.TimerStopped
	item.TimerStartedAt = time.Time{}
	item.UpdatedAt = time.Now().UTC()
	log.Printf("[lifecycle][usecase] cancel item_id=%s", item.ID)
	return u.items.Update(ctx, item)
}

func (u *LifecycleUseCase) Complete(ctx context.Context, itemID string) (entities.WorkItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}

	item, err := u.loadMutable(ctx, itemID)
	if err != nil {
		return entities.WorkItem{}, err
	}

	item.Status = entities.StatusCompleted
	item.ProgressPercentage = 100
	item.TimerState = entities.TimerStopped
	item.TimerStartedAt = time.Time{}
	item.UpdatedAt = time.Now().UTC()
	log.Printf("[lifecycle][usecase] complete item_id=%s", item.ID)
	return u.items.Update(ctx, item)
}

func (u *LifecycleUseCase) GetByID(ctx context.Context, itemID string) (entities.WorkItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}

	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if item.ID == "" {
		return entities.WorkItem{}, ErrWorkItemNotFound
	}
	return item, nil
}

func (u *LifecycleUseCase) ListAll(ctx context.Context) ([]entities.WorkItem, error) {
	return u.items.ListAll(ctx)
}

func (u *LifecycleUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.WorkItem, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrMissingRequiredField
	}
	return u.items.ListByCustomerID(ctx, customerID)
}

// ListAssignedTo is the scoping query backing the employee surface: only
// items where the assigned employee matches the caller.
func (u *LifecycleUseCase) ListAssignedTo(ctx context.Context, employeeID string) ([]entities.WorkItem, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	return u.items.ListByEmployeeID(ctx, employeeID)
}

// ListByStatus accepts any historical status spelling; the filter is
// normalized the same way ingestion is.
func (u *LifecycleUseCase) ListByStatus(ctx context.Context, status string) ([]entities.WorkItem, error) {
	if strings.TrimSpace(status) == "" {
		return nil, ErrMissingRequiredField
	}
	return u.items.ListByStatus(ctx, entities.NormalizeStatus(status))
}

// ListRequesting feeds the admin assignment queue.
func (u *LifecycleUseCase) ListRequesting(ctx context.Context) ([]entities.WorkItem, error) {
	return u.items.ListByStatus(ctx, entities.StatusRequesting)
}

// loadMutable resolves an item and rejects terminal states before any
// mutation is attempted.
func (u *LifecycleUseCase) loadMutable(ctx context.Context, itemID string) (entities.WorkItem, error) {
	item, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if item.ID == "" {
		return entities.WorkItem{}, ErrWorkItemNotFound
	}
	if item.Status.IsTerminal() {
		return entities.WorkItem{}, ErrInvalidTransition
	}
	return item, nil
}
