package usecase

import (
	"context"
	"log"
	"strings"

	"servicecenter_ops/internal/domain/entities"
	"servicecenter_ops/internal/usecase/interfaces"
)

// Legacy status spellings per dashboard bucket, compared case-insensitively.
// Older records still carry these spellings, so the tables must not be
// reduced to the canonical enum.
var (
	upcomingAppointmentStatuses = []string{"assigned", "upcoming", "pending", "approved"}
	ongoingProjectStatuses      = []string{"assigned", "ongoing", "in_progress", "in progress", "pending"}
)

// IStatsUseCase is the pure read-side view over the work item collection.
// Counters are recomputed from scratch on every call; the operation never
// fails and degrades to zeroed counters when the collection is unreadable.

type IStatsUseCase interface {
	DashboardStats(ctx context.Context) (entities.DashboardStats, error)
}

type StatsUseCase struct {
	items    interfaces.IWorkItemRepository
	vehicles interfaces.IVehicleRepository
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(items interfaces.IWorkItemRepository, vehicles interfaces.IVehicleRepository) *StatsUseCase {
	return &StatsUseCase{items: items, vehicles: vehicles}
}

func (u *StatsUseCase) DashboardStats(ctx context.Context) (entities.DashboardStats, error) {
	items, err := u.items.ListAll(ctx)
	if err != nil {
		log.Printf("[stats][usecase] work item scan failed, returning zeroed counters: %v", err)
		return entities.DashboardStats{}, nil
	}

	totalVehicles, err := u.vehicles.CountAll(ctx)
	if err != nil {
		log.Printf("[stats][usecase] vehicle count failed, defaulting to zero: %v", err)
		totalVehicles = 0
	}

	return ComputeDashboardStats(items, totalVehicles), nil
}

// ComputeDashboardStats classifies the given items into the dashboard
// counters. Pure; safe on a nil slice.
func ComputeDashboardStats(items []entities.WorkItem, totalVehicles int) entities.DashboardStats {
	stats := entities.DashboardStats{TotalVehicles: totalVehicles}
	for _, item := range items {
		status := string(item.Status)
		switch item.Kind {
		case entities.KindAppointment:
			stats.TotalAppointments++
			switch {
			case statusIn(status, upcomingAppointmentStatuses):
				stats.UpcomingAppointments++
			case equalsFold(status, string(entities.StatusCompleted)):
				stats.CompletedAppointments++
			case isCancelledSpelling(status):
				stats.CancelledAppointments++
			}
		case entities.KindProject:
			stats.TotalProjects++
			switch {
			case statusIn(status, ongoingProjectStatuses):
				stats.OngoingProjects++
			case equalsFold(status, string(entities.StatusCompleted)):
				stats.CompletedProjects++
			}
		}
	}
	return stats
}

func statusIn(status string, spellings []string) bool {
	for _, s := range spellings {
		if equalsFold(status, s) {
			return true
		}
	}
	return false
}

func isCancelledSpelling(status string) bool {
	return equalsFold(status, "cancelled") || equalsFold(status, "canceled")
}

func equalsFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}
