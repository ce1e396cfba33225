package disk

import (
	"regexp"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type Inspector interface {
	Inspect(devicePath string) (PartitionTable, error)
}

type sfdiskLayoutInspector struct {
	logger         boshlog.Logger
	cmdRunner      boshsys.CmdRunner
	mountsSearcher MountsSearcher
	logTag         string
}

func NewSfdiskLayoutInspector(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
	mountsSearcher MountsSearcher,
) Inspector {
	return sfdiskLayoutInspector{
		logger:         logger,
		cmdRunner:      cmdRunner,
		mountsSearcher: mountsSearcher,
		logTag:         "SfdiskLayoutInspector",
	}
}

// Matches both the util-linux `type=` and the legacy `Id=` dump fields.
var sfdiskDumpEntryPattern = regexp.MustCompile(`^(\S+)\s*:\s*start=\s*(\d+),\s*size=\s*(\d+),\s*(?:type|Id)=\s*([0-9A-Fa-f]+)`)

func (i sfdiskLayoutInspector) Inspect(devicePath string) (PartitionTable, error) {
	dump, _, _, err := i.cmdRunner.RunCommand("sfdisk", "-d", devicePath)
	if err != nil {
		return PartitionTable{}, LayoutUnreadableError{
			DevicePath: devicePath,
			Cause:      bosherr.WrapError(err, "Dumping partition table"),
		}
	}

	sizeOut, _, _, err := i.cmdRunner.RunCommand("blockdev", "--getsz", devicePath)
	if err != nil {
		return PartitionTable{}, LayoutUnreadableError{
			DevicePath: devicePath,
			Cause:      bosherr.WrapError(err, "Reading device sector count"),
		}
	}

	totalSectors, err := strconv.ParseUint(strings.TrimSpace(sizeOut), 10, 64)
	if err != nil {
		return PartitionTable{}, LayoutUnreadableError{
			DevicePath: devicePath,
			Cause:      bosherr.WrapError(err, "Parsing device sector count"),
		}
	}

	table := PartitionTable{
		DevicePath:   devicePath,
		TotalSectors: totalSectors,
		Entries:      i.parseDump(devicePath, dump),
	}

	rootIndex, err := i.findRootPartitionIndex(devicePath)
	if err != nil {
		return PartitionTable{}, err
	}
	table.RootIndex = rootIndex

	if !table.MatchesBaseScheme() {
		i.logger.Info(i.logTag, "Layout of '%s' is not the two-partition base scheme (%d partitions, root at %d)",
			devicePath, len(table.Entries), table.RootIndex)
	}

	i.logger.Debug(i.logTag, "Inspected '%s': %d sectors, %d partitions", devicePath, totalSectors, len(table.Entries))

	return table, nil
}

func (i sfdiskLayoutInspector) parseDump(devicePath, dump string) []PartitionEntry {
	entries := []PartitionEntry{}

	for _, line := range strings.Split(dump, "\n") {
		fields := sfdiskDumpEntryPattern.FindStringSubmatch(strings.TrimSpace(line))
		if fields == nil {
			continue
		}

		index := partitionIndexOnDevice(devicePath, fields[1])
		if index == 0 {
			continue
		}

		start, startErr := strconv.ParseUint(fields[2], 10, 64)
		size, sizeErr := strconv.ParseUint(fields[3], 10, 64)
		if startErr != nil || sizeErr != nil || size == 0 {
			// sfdisk pads empty primary slots with zero-size entries
			continue
		}

		entries = append(entries, PartitionEntry{
			Index:       index,
			StartSector: start,
			EndSector:   start + size - 1,
			Type:        strings.ToLower(fields[4]),
		})
	}

	return entries
}

func (i sfdiskLayoutInspector) findRootPartitionIndex(devicePath string) (int, error) {
	mounts, err := i.mountsSearcher.SearchMounts()
	if err != nil {
		return 0, LayoutUnreadableError{
			DevicePath: devicePath,
			Cause:      bosherr.WrapError(err, "Searching mounts"),
		}
	}

	for _, mount := range mounts {
		if mount.MountPoint != "/" {
			continue
		}
		return partitionIndexOnDevice(devicePath, mount.PartitionPath), nil
	}

	return 0, LayoutUnreadableError{
		DevicePath: devicePath,
		Cause:      bosherr.Error("No root mount found"),
	}
}
