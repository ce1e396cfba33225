package disk

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SectorsPerMB is the number of 512-byte sectors in one MiB.
const SectorsPerMB = 2048

// Base image partition scheme: partition 1 is the FAT32 boot partition,
// partition 2 is the ext4 root. A newly carved data partition becomes 3.
const (
	BootPartitionIndex = 1
	RootPartitionIndex = 2
	DataPartitionIndex = 3
)

type PartitionEntry struct {
	Index       int
	StartSector uint64
	EndSector   uint64
	Type        string
}

// PartitionTable is a read-only snapshot of a device's partition layout and
// mount state. It is stale the moment any mutation runs, so consumers must
// compute their full plan from it before mutating.
type PartitionTable struct {
	DevicePath   string
	TotalSectors uint64
	Entries      []PartitionEntry

	// RootIndex is the entry index mounted at /, or 0 when the root
	// filesystem does not live on this device.
	RootIndex int
}

// MatchesBaseScheme reports whether the snapshot is the expected base image
// layout: exactly two partitions numbered 1 and 2, with the root mounted
// from partition 2. Anything else is refused rather than guessed at.
func (t PartitionTable) MatchesBaseScheme() bool {
	if len(t.Entries) != 2 {
		return false
	}
	if t.Entries[0].Index != BootPartitionIndex || t.Entries[1].Index != RootPartitionIndex {
		return false
	}
	return t.RootIndex == RootPartitionIndex
}

func (t PartitionTable) Entry(index int) (PartitionEntry, bool) {
	for _, entry := range t.Entries {
		if entry.Index == index {
			return entry, true
		}
	}
	return PartitionEntry{}, false
}

func (e PartitionEntry) String() string {
	return fmt.Sprintf("[Index: %d, Start: %d, End: %d, Type: %s]", e.Index, e.StartSector, e.EndSector, e.Type)
}

// PartitionNodePath returns the device node for a partition index, honoring
// the kernel naming rule that devices ending in a digit (mmcblk0, nvme0n1,
// loop3) take a 'p' infix before the partition number.
func PartitionNodePath(devicePath string, index int) string {
	if devicePath == "" {
		return devicePath
	}
	if unicode.IsDigit(rune(devicePath[len(devicePath)-1])) {
		return fmt.Sprintf("%sp%d", devicePath, index)
	}
	return fmt.Sprintf("%s%d", devicePath, index)
}

// partitionIndexOnDevice extracts the partition number from a partition node
// path, returning 0 when the node does not belong to devicePath.
func partitionIndexOnDevice(devicePath, nodePath string) int {
	if !strings.HasPrefix(nodePath, devicePath) {
		return 0
	}

	suffix := strings.TrimPrefix(nodePath, devicePath)
	suffix = strings.TrimPrefix(suffix, "p")

	index, err := strconv.Atoi(suffix)
	if err != nil || index < 1 {
		return 0
	}
	return index
}
