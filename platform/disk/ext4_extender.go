package disk

import (
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type Extender interface {
	Extend(plan LayoutPlan, table PartitionTable) ExtensionResult
}

type ext4Extender struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	logTag    string
}

func NewExt4Extender(logger boshlog.Logger, cmdRunner boshsys.CmdRunner) Extender {
	return ext4Extender{
		logger:    logger,
		cmdRunner: cmdRunner,
		logTag:    "Ext4Extender",
	}
}

// Extend grows the root partition and its ext4 filesystem into whatever
// space the plan left for it. For a create-and-shrink plan the partition
// entry is resized to the planned end sector and the filesystem grown with
// resize2fs; for expand-only the platform's own expansion routine is used,
// which does both in one step and is the reliable choice on older base
// images. Outcomes are logged and never retried.
func (e ext4Extender) Extend(plan LayoutPlan, table PartitionTable) ExtensionResult {
	var outcomes []StepOutcome

	if plan.CreatePartition {
		outcomes = []StepOutcome{
			e.resizeRootPartition(table.DevicePath, plan.RootNewEnd),
			e.growRootFilesystem(table.DevicePath),
		}
	} else {
		outcomes = []StepOutcome{e.expandRootFilesystem()}
	}

	for _, outcome := range outcomes {
		if outcome.Failed() {
			e.logger.Error(e.logTag, "Step '%s' FAILED: %s", outcome.Name, outcome.Err.Error())
		} else {
			e.logger.Info(e.logTag, "Step '%s' succeeded", outcome.Name)
		}
	}

	return ExtensionResult{Outcomes: outcomes}
}

func (e ext4Extender) resizeRootPartition(devicePath string, newEndSector uint64) StepOutcome {
	_, _, _, err := e.cmdRunner.RunCommand(
		"parted", "-s", devicePath,
		"unit", "s",
		"resizepart", fmt.Sprintf("%d", RootPartitionIndex), fmt.Sprintf("%ds", newEndSector),
	)
	if err != nil {
		err = bosherr.WrapErrorf(err, "Resizing root partition of '%s' to sector %d", devicePath, newEndSector)
	}

	return StepOutcome{Name: "resize-root-partition", Err: err}
}

func (e ext4Extender) growRootFilesystem(devicePath string) StepOutcome {
	rootPartitionPath := PartitionNodePath(devicePath, RootPartitionIndex)

	_, _, _, err := e.cmdRunner.RunCommand("resize2fs", "-f", rootPartitionPath)
	if err != nil {
		err = bosherr.WrapErrorf(err, "Growing ext4 filesystem on '%s'", rootPartitionPath)
	}

	return StepOutcome{Name: "grow-root-filesystem", Err: err}
}

func (e ext4Extender) expandRootFilesystem() StepOutcome {
	_, _, _, err := e.cmdRunner.RunCommand("raspi-config", "nonint", "do_expand_rootfs")
	if err != nil {
		err = bosherr.WrapError(err, "Expanding root filesystem via raspi-config")
	}

	return StepOutcome{Name: "expand-root-filesystem", Err: err}
}
