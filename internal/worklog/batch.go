package worklog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/plantworks/facilityops/internal"
)

// SourceEntry is one contributor's input to a group dismantling task,
// e.g. "u3 dismantled 30 CPUs".
type SourceEntry struct {
	UserID string  `json:"userId" validate:"required"`
	Item   string  `json:"item"`
	Qty    float64 `json:"qty" validate:"gte=0"`
}

// OutputEntry is one recovered material and its total measured weight
// across the whole batch.
type OutputEntry struct {
	Material string  `json:"material"`
	WeightKg float64 `json:"weightKg" validate:"gte=0"`
}

// Allocation is one contributor's slice of one output material.
type Allocation struct {
	Material string  `json:"material"`
	WeightKg float64 `json:"weightKg"`
}

// ContributorShare is the preview row for one contributor: their share
// of the total input units and the weights allocated from it. Weights
// may be overridden before confirmation; overrides are taken as-is and
// never re-normalized against the other rows.
type ContributorShare struct {
	UserID        string       `json:"userId"`
	UserName      string       `json:"userName"`
	SourceSummary string       `json:"sourceSummary"`
	SharePct      string       `json:"sharePct"`
	Allocations   []Allocation `json:"allocations"`
}

// DistributionPlan is an editable preview of a batch split. Build it
// with BuildDistribution, optionally adjust weights with SetWeight,
// then confirm it to materialize the logs.
type DistributionPlan struct {
	Shares []ContributorShare `json:"shares"`

	// Shift times copied onto every materialized log.
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	BreakStartTime string `json:"breakStartTime"`
	BreakEndTime   string `json:"breakEndTime"`
}

// BuildDistribution splits each output material's total weight across
// the named contributors in proportion to their input units. A
// contributor's share is their units over the batch total; per-material
// weights are rounded to two decimals row by row, so the rounded rows
// may drift a cent or two from the stated total. That drift is accepted
// rather than reconciled.
//
// Refused when no input units were recorded at all, since shares would
// be undefined.
func BuildDistribution(contributors map[string]string, sources []SourceEntry, outputs []OutputEntry) (*DistributionPlan, error) {
	var totalUnits float64
	unitsByUser := make(map[string]float64)
	for _, src := range sources {
		totalUnits += src.Qty
		unitsByUser[src.UserID] += src.Qty
	}
	if totalUnits == 0 {
		return nil, internal.ErrNoSourceUnits
	}

	userIDs := make([]string, 0, len(contributors))
	for id := range contributors {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	plan := &DistributionPlan{}
	for _, uid := range userIDs {
		share := unitsByUser[uid] / totalUnits

		var parts []string
		for _, src := range sources {
			if src.UserID == uid && src.Item != "" && src.Qty > 0 {
				parts = append(parts, fmt.Sprintf("%g %s", src.Qty, src.Item))
			}
		}

		var allocations []Allocation
		for _, out := range outputs {
			if out.Material == "" {
				continue
			}
			allocations = append(allocations, Allocation{
				Material: out.Material,
				WeightKg: round2(out.WeightKg * share),
			})
		}

		plan.Shares = append(plan.Shares, ContributorShare{
			UserID:        uid,
			UserName:      contributors[uid],
			SourceSummary: strings.Join(parts, ", "),
			SharePct:      fmt.Sprintf("%.1f", share*100),
			Allocations:   allocations,
		})
	}
	return plan, nil
}

// SetWeight overrides one allocation in the preview before it is
// confirmed. The other rows keep their computed weights.
func (p *DistributionPlan) SetWeight(shareIdx, allocIdx int, weightKg float64) error {
	if shareIdx < 0 || shareIdx >= len(p.Shares) {
		return internal.ErrRecordNotFound
	}
	allocs := p.Shares[shareIdx].Allocations
	if allocIdx < 0 || allocIdx >= len(allocs) {
		return internal.ErrRecordNotFound
	}
	allocs[allocIdx].WeightKg = weightKg
	return nil
}

// ConfirmDistribution materializes a plan into pending work logs, one
// per contributor and material, all sharing one batch id. Every log
// goes through Create, so each material weight is credited to inventory
// the same way an individually logged weight would be.
func (s *Service) ConfirmDistribution(ctx context.Context, plan *DistributionPlan) ([]WorkLog, error) {
	total := 0
	for _, share := range plan.Shares {
		total += len(share.Allocations)
	}
	if total == 0 {
		return nil, internal.ErrEmptyBatch
	}

	batchID := uuid.NewString()
	hours := ComputeHours(plan.StartTime, plan.EndTime, plan.BreakStartTime, plan.BreakEndTime)

	created := make([]WorkLog, 0, total)
	for _, share := range plan.Shares {
		summary := share.SourceSummary
		if summary == "" {
			summary = "Shared Task"
		}
		for _, alloc := range share.Allocations {
			log, err := s.Create(ctx, WorkLog{
				UserID:            share.UserID,
				UserName:          share.UserName,
				Date:              plan.Date,
				Category:          CategoryDismantling,
				TaskDescription:   fmt.Sprintf("Batch Dismantling: %s. (Share: %s%%)", summary, share.SharePct),
				BatchID:           batchID,
				HoursWorked:       hours,
				StartTime:         plan.StartTime,
				EndTime:           plan.EndTime,
				BreakStartTime:    plan.BreakStartTime,
				BreakEndTime:      plan.BreakEndTime,
				MaterialType:      alloc.Material,
				WeightProcessedKg: alloc.WeightKg,
				SourceItem:        "Batch Mixed",
				Status:            StatusPending,
			})
			if err != nil {
				return created, err
			}
			created = append(created, *log)
		}
	}

	s.logger.Info("batch distribution confirmed",
		"batch_id", batchID,
		"log_count", len(created))
	return created, nil
}
