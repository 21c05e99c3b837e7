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
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
	ErrInvalidHours      = errors.New("hours must be greater than zero")
	ErrInvalidStage      = errors.New("invalid stage")
)

// IProgressUseCase tracks execution progress for a single work item:
// append-only stage/percentage history, additive time logging, and the
// execution timer flag.
//
// Percentage is an overwrite, not a merge: a later report may legally lower
// it. Reporting 100 completes the item; the first nonzero report on an
// ASSIGNED item moves it to IN_PROGRESS. Every operation rejects terminal
// items with ErrInvalidTransition.

type IProgressUseCase interface {
	ReportProgress(ctx context.Context, itemID, stage string, percentage int, remarks, updatedBy string) (entities.ProgressUpdate, error)
	LogTime(ctx context.Context, itemID string, hours float64, description string) (entities.TimeLog, error)
	StartTimer(ctx context.Context, itemID string) (entities.WorkItem, error)
	PauseTimer(ctx context.Context, itemID string) (entities.WorkItem, error)
	ProgressHistory(ctx context.Context, itemID string) ([]entities.ProgressUpdate, error)
	TimeLogs(ctx context.Context, itemID string) ([]entities.TimeLog, error)
}

type ProgressUseCase struct {
	items    interfaces.IWorkItemRepository
	progress interfaces.IProgressUpdateRepository
	timeLogs interfaces.ITimeLogRepository

	// deriveOnPause folds the elapsed timer duration into LoggedHours when
	// the timer is paused. Off by default: the source system treats the
	// timer as a display flag and relies on explicit LogTime calls.
	deriveOnPause bool
	now           func() time.Time
}

var _ IProgressUseCase = (*ProgressUseCase)(nil)

type ProgressOption func(*ProgressUseCase)

// WithDerivedTimeOnPause enables the derive-on-pause strategy behind the
// unchanged StartTimer/PauseTimer contract.
func WithDerivedTimeOnPause() ProgressOption {
	return func(u *ProgressUseCase) { u.deriveOnPause = true }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) ProgressOption {
	return func(u *ProgressUseCase) { u.now = now }
}

func NewProgressUseCase(
	items interfaces.IWorkItemRepository,
	progress interfaces.IProgressUpdateRepository,
	timeLogs interfaces.ITimeLogRepository,
	opts ...ProgressOption,
) *ProgressUseCase {
	u := &ProgressUseCase{
		items:    items,
		progress: progress,
		timeLogs: timeLogs,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *ProgressUseCase) ReportProgress(ctx context.Context, itemID, stage string, percentage int, remarks, updatedBy string) (entities.ProgressUpdate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ProgressUpdate{}, ErrInvalidWorkItemID
	}
	stage = strings.TrimSpace(stage)
	if stage == "" {
		return entities.ProgressUpdate{}, ErrInvalidStage
	}
	if percentage < 0 || percentage > 100 {
		return entities.ProgressUpdate{}, ErrInvalidPercentage
	}

	item, err := u.loadMutable(ctx, itemID)
	if err != nil {
		return entities.ProgressUpdate{}, err
	}

	now := u.now().UTC()
	update := entities.ProgressUpdate{
		ID:         uuid.NewString(),
		WorkItemID: item.ID,
		Stage:      stage,
		Percentage: percentage,
		Remarks:    strings.TrimSpace(remarks),
		UpdatedBy:  strings.TrimSpace(updatedBy),
		CreatedAt:  now,
	}
	saved, err := u.progress.Append(ctx, update)
	if err != nil {
		return entities.ProgressUpdate{}, err
	}

	item.ProgressPercentage = percentage
	switch {
	case percentage == 100:
		item.Status = entities.StatusCompleted
		item.TimerState = entities.TimerStopped
		item.TimerStartedAt = time.Time{}
	case percentage > 0 && item.Status == entities.StatusAssigned:
		item.Status = entities.StatusInProgress
	}
	item.UpdatedAt = now
	if _, err := u.items.Update(ctx, item); err != nil {
		return entities.ProgressUpdate{}, err
	}
	log.Printf("[progress][usecase] report item_id=%s stage=%q percentage=%d status=%s", item.ID, stage, percentage, item.Status)
	return saved, nil
}

func (u *ProgressUseCase) LogTime(ctx context.Context, itemID string, hours float64, description string) (entities.TimeLog, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.TimeLog{}, ErrInvalidWorkItemID
	}
	if hours <= 0 {
		return entities.TimeLog{}, ErrInvalidHours
	}

	item, err := u.loadMutable(ctx, itemID)
	if err != nil {
		return entities.TimeLog{}, err
	}

	now := u.now().UTC()
	logEntry := entities.TimeLog{
		ID:          uuid.NewString(),
		WorkItemID:  item.ID,
		Hours:       hours,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
	}
	saved, err := u.timeLogs.Append(ctx, logEntry)
	if err != nil {
		return entities.TimeLog{}, err
	}

	item.LoggedHours += hours
	item.UpdatedAt = now
	if _, err := u.items.Update(ctx, item); err != nil {
		return entities.TimeLog{}, err
	}
	log.Printf("[progress][usecase] time logged item_id=%s hours=%.2f total=%.2f", item.ID, hours, item.LoggedHours)
	return saved, nil
}

// StartTimer is idempotent: starting while already RUNNING returns the
// current state unchanged, tolerating duplicate client clicks.
func (u *ProgressUseCase) StartTimer(ctx context.Context, itemID string) (entities.WorkItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}

	item, err := u.loadMutable(ctx, itemID)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if item.TimerState == entities.TimerRunning {
		return item, nil
	}

	now := u.now().UTC()
	item.TimerState = entities.TimerRunning
	item.TimerStartedAt = now
	item.UpdatedAt = now
	log.Printf("[progress][usecase] timer started item_id=%s", item.ID)
	return u.items.Update(ctx, item)
}

// PauseTimer is idempotent: pausing while STOPPED returns the current state
// unchanged. With the derive-on-pause strategy enabled, the elapsed timer
// duration is folded into LoggedHours as an auto-appended time log.
func (u *ProgressUseCase) PauseTimer(ctx context.Context, itemID string) (entities.WorkItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}

	item, err := u.loadMutable(ctx, itemID)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if item.TimerState == entities.TimerStopped {
		return item, nil
	}

	now := u.now().UTC()
	if u.deriveOnPause && !item.TimerStartedAt.IsZero() {
		elapsed := now.Sub(item.TimerStartedAt).Hours()
		if elapsed > 0 {
			logEntry := entities.TimeLog{
				ID:          uuid.NewString(),
				WorkItemID:  item.ID,
				Hours:       elapsed,
				Description: "timer session",
				CreatedAt:   now,
			}
			if _, err := u.timeLogs.Append(ctx, logEntry); err != nil {
				return entities.WorkItem{}, err
			}
			item.LoggedHours += elapsed
			log.Printf("[progress][usecase] timer session folded item_id=%s hours=%.2f", item.ID, elapsed)
		}
	}

	item.TimerState = entities.TimerStopped
	item.TimerStartedAt = time.Time{}
	item.UpdatedAt = now
	log.Printf("[progress][usecase] timer paused item_id=%s", item.ID)
	return u.items.Update(ctx, item)
}

func (u *ProgressUseCase) ProgressHistory(ctx context.Context, itemID string) ([]entities.ProgressUpdate, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidWorkItemID
	}
	return u.progress.ListByWorkItemID(ctx, itemID)
}

func (u *ProgressUseCase) TimeLogs(ctx context.Context, itemID string) ([]entities.TimeLog, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return nil, ErrInvalidWorkItemID
	}
	return u.timeLogs.ListByWorkItemID(ctx, itemID)
}

func (u *ProgressUseCase) loadMutable(ctx context.Context, itemID string) (entities.WorkItem, error) {
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
