package fakes

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
)

type FakeInspector struct {
	InspectCalled     bool
	InspectDevicePath string
	InspectTable      boshdisk.PartitionTable
	InspectErr        error
}

func NewFakeInspector() *FakeInspector {
	return &FakeInspector{}
}

func (i *FakeInspector) Inspect(devicePath string) (boshdisk.PartitionTable, error) {
	i.InspectCalled = true
	i.InspectDevicePath = devicePath
	return i.InspectTable, i.InspectErr
}
