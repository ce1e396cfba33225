package disk

type Mount struct {
	PartitionPath string
	MountPoint    string
	Type          string
}

type MountsSearcher interface {
	SearchMounts() ([]Mount, error)
}
