package disk

import (
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

// fat32LbaType is the MBR partition type for W95 FAT32 (LBA), the value the
// stock boot partition carries on Raspberry Pi images.
const fat32LbaType = "c"

type Mutator interface {
	Apply(plan LayoutPlan, table PartitionTable, label string) MutationResult
}

type sfdiskMutator struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	registrar MountRegistrar
	logTag    string
}

func NewSfdiskMutator(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
	registrar MountRegistrar,
) Mutator {
	return sfdiskMutator{
		logger:    logger,
		cmdRunner: cmdRunner,
		registrar: registrar,
		logTag:    "SfdiskMutator",
	}
}

// Apply executes a create-and-shrink plan against the device. The table
// snapshot is already stale after the first step, so every boundary comes
// from the precomputed plan and nothing is re-queried. Each step runs even
// when an earlier one failed.
func (m sfdiskMutator) Apply(plan LayoutPlan, table PartitionTable, label string) MutationResult {
	if !plan.CreatePartition {
		return MutationResult{}
	}

	devicePath := table.DevicePath
	partitionPath := PartitionNodePath(devicePath, DataPartitionIndex)

	outcomes := []StepOutcome{
		m.createPartition(devicePath, plan),
		m.setPartitionType(devicePath),
		m.rereadPartitionTable(devicePath),
		m.formatPartition(partitionPath, label),
		m.registerMount(partitionPath, label),
	}

	for _, outcome := range outcomes {
		if outcome.Failed() {
			m.logger.Error(m.logTag, "Step '%s' FAILED: %s", outcome.Name, outcome.Err.Error())
		} else {
			m.logger.Info(m.logTag, "Step '%s' succeeded", outcome.Name)
		}
	}

	return MutationResult{Outcomes: outcomes}
}

func (m sfdiskMutator) createPartition(devicePath string, plan LayoutPlan) StepOutcome {
	script := fmt.Sprintf("start=%d, size=%d\n", plan.NewPartitionStart, plan.NewPartitionSizeSectors())

	_, _, _, err := m.cmdRunner.RunCommandWithInput(script, "sfdisk", "--append", devicePath)
	if err != nil {
		err = bosherr.WrapErrorf(err, "Appending partition %d to '%s'", DataPartitionIndex, devicePath)
	}

	return StepOutcome{Name: "create-partition", Err: err}
}

func (m sfdiskMutator) setPartitionType(devicePath string) StepOutcome {
	_, _, _, err := m.cmdRunner.RunCommand(
		"sfdisk", "--part-type", devicePath, fmt.Sprintf("%d", DataPartitionIndex), fat32LbaType,
	)
	if err != nil {
		err = bosherr.WrapErrorf(err, "Setting type of partition %d on '%s'", DataPartitionIndex, devicePath)
	}

	return StepOutcome{Name: "set-partition-type", Err: err}
}

// The kernel does not propagate sfdisk's table edits on its own, so force a
// reread before the new node is used.
func (m sfdiskMutator) rereadPartitionTable(devicePath string) StepOutcome {
	_, _, _, err := m.cmdRunner.RunCommand("partprobe", devicePath)
	if err != nil {
		err = bosherr.WrapErrorf(err, "Rereading partition table of '%s'", devicePath)
	}

	return StepOutcome{Name: "reread-partition-table", Err: err}
}

func (m sfdiskMutator) formatPartition(partitionPath, label string) StepOutcome {
	_, _, _, err := m.cmdRunner.RunCommand("mkfs.vfat", "-F", "32", "-n", label, partitionPath)
	if err != nil {
		err = bosherr.WrapErrorf(err, "Formatting '%s' as FAT32", partitionPath)
	}

	return StepOutcome{Name: "format-partition", Err: err}
}

func (m sfdiskMutator) registerMount(partitionPath, label string) StepOutcome {
	err := m.registrar.Register(partitionPath, label)
	if err != nil {
		err = bosherr.WrapErrorf(err, "Registering mount for '%s'", partitionPath)
	}

	return StepOutcome{Name: "register-mount", Err: err}
}
