package disk

import (
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

// LayoutPlan is the terminal decision of a planning run. The zero value is
// the expand-only plan: no new partition, the root partition grows to the
// device end. When CreatePartition is set the three sector boundaries
// describe where the new partition goes and where the root partition must
// now end.
type LayoutPlan struct {
	CreatePartition bool

	NewPartitionStart uint64
	NewPartitionEnd   uint64
	RootNewEnd        uint64
}

func (p LayoutPlan) String() string {
	if !p.CreatePartition {
		return "expand-only"
	}
	return fmt.Sprintf("create-and-shrink [new: %d-%d, root end: %d]", p.NewPartitionStart, p.NewPartitionEnd, p.RootNewEnd)
}

// NewPartitionSizeSectors is the sector count of the planned partition.
func (p LayoutPlan) NewPartitionSizeSectors() uint64 {
	if !p.CreatePartition {
		return 0
	}
	return p.NewPartitionEnd - p.NewPartitionStart + 1
}

// validate aborts planning on boundary arithmetic that would corrupt the
// table. These never fire for plans produced by the planner; they guard
// against future changes to the arithmetic.
func (p LayoutPlan) validate(totalSectors uint64) error {
	if !p.CreatePartition {
		return nil
	}

	if p.NewPartitionStart <= p.RootNewEnd {
		return bosherr.Errorf("Planned partition start %d does not follow root partition end %d", p.NewPartitionStart, p.RootNewEnd)
	}
	if p.RootNewEnd >= totalSectors {
		return bosherr.Errorf("Planned root partition end %d exceeds device size %d", p.RootNewEnd, totalSectors)
	}
	if p.NewPartitionEnd >= totalSectors {
		return bosherr.Errorf("Planned partition end %d exceeds device size %d", p.NewPartitionEnd, totalSectors)
	}

	return nil
}
