package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

type Planner interface {
	Plan(table PartitionTable, newPartitionSizeMB int) (LayoutPlan, error)
}

type layoutPlanner struct {
	logger boshlog.Logger
	logTag string
}

func NewLayoutPlanner(logger boshlog.Logger) Planner {
	return layoutPlanner{
		logger: logger,
		logTag: "LayoutPlanner",
	}
}

// Plan decides whether a data partition of newPartitionSizeMB can be carved
// out of the tail of the device. A size of zero or a layout that is not the
// two-partition base scheme yields the expand-only plan; a partition that
// does not fit is an InsufficientSpaceError, which callers treat as a fall
// back to expand-only rather than a fatal failure.
func (p layoutPlanner) Plan(table PartitionTable, newPartitionSizeMB int) (LayoutPlan, error) {
	if newPartitionSizeMB <= 0 {
		p.logger.Info(p.logTag, "No data partition requested, expanding root partition only")
		return LayoutPlan{}, nil
	}

	if !table.MatchesBaseScheme() {
		p.logger.Info(p.logTag, "Layout of '%s' does not match the base image scheme, expanding root partition only", table.DevicePath)
		return LayoutPlan{}, nil
	}

	root, _ := table.Entry(RootPartitionIndex)
	requiredSectors := uint64(newPartitionSizeMB) * SectorsPerMB

	if root.EndSector+requiredSectors >= table.TotalSectors {
		return LayoutPlan{}, InsufficientSpaceError{
			RequiredSectors: requiredSectors,
			RootEndSector:   root.EndSector,
			TotalSectors:    table.TotalSectors,
		}
	}

	rootNewEnd := table.TotalSectors - requiredSectors - 1

	plan := LayoutPlan{
		CreatePartition:   true,
		RootNewEnd:        rootNewEnd,
		NewPartitionStart: rootNewEnd + 1,
		NewPartitionEnd:   table.TotalSectors - 1,
	}

	if err := plan.validate(table.TotalSectors); err != nil {
		return LayoutPlan{}, err
	}

	p.logger.Info(p.logTag, "Planned %d MB data partition: %s", newPartitionSizeMB, plan)

	return plan, nil
}
