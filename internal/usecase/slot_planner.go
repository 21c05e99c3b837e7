package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase/interfaces"
)

var (
	ErrInvalidDate = errors.New("invalid booking date")
	ErrInvalidSlot = errors.New("invalid time slot")
)

// timeSlots is the fixed half-hour booking grid offered to customers.
var timeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// ISlotPlannerUseCase turns a (service, date, chosen slot) triple into a
// concrete appointment schedule.
//
// Known gaps carried over from the source system:
//   - past dates are accepted;
//   - no double-booking or capacity check is performed;
//   - a late slot plus a long service wraps past midnight without a
//     day-rollover correction (the date stays unchanged).

type ISlotPlannerUseCase interface {
	TimeSlots() []string
	PlanSchedule(ctx context.Context, serviceID, date, startTime string) (entities.AppointmentSchedule, error)
}

type SlotPlannerUseCase struct {
	services interfaces.IServiceRepository
}

var _ ISlotPlannerUseCase = (*SlotPlannerUseCase)(nil)

func NewSlotPlannerUseCase(services interfaces.IServiceRepository) *SlotPlannerUseCase {
	return &SlotPlannerUseCase{services: services}
}

// TimeSlots returns the bookable grid in display order.
func (u *SlotPlannerUseCase) TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func (u *SlotPlannerUseCase) PlanSchedule(ctx context.Context, serviceID, date, startTime string) (entities.AppointmentSchedule, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.AppointmentSchedule{}, ErrInvalidServiceID
	}
	date = strings.TrimSpace(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return entities.AppointmentSchedule{}, ErrInvalidDate
	}
	startTime = strings.TrimSpace(startTime)
	if !isBookableSlot(startTime) {
		return entities.AppointmentSchedule{}, ErrInvalidSlot
	}

	s, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.AppointmentSchedule{}, err
	}
	if s.ID == "" || !s.Active {
		return entities.AppointmentSchedule{}, ErrServiceNotFound
	}

	return entities.AppointmentSchedule{
		Date:      date,
		StartTime: startTime,
		EndTime:   addMinutes(startTime, s.EstimatedMinutes),
	}, nil
}

func isBookableSlot(startTime string) bool {
	for _, slot := range timeSlots {
		if slot == startTime {
			return true
		}
	}
	return false
}

// addMinutes does plain minute arithmetic on an "HH:MM" string. The hour
// wraps modulo 24 with no date adjustment.
func addMinutes(hhmm string, minutes int) string {
	var h, m int
	fmt.Sscanf(hhmm, "%d:%d", &h, &m)
	total := h*60 + m + minutes
	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}
