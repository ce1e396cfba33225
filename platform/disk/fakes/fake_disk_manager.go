package fakes

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
)

type FakeDiskManager struct {
	FakeInspector      *FakeInspector
	FakePlanner        *FakePlanner
	FakeMutator        *FakeMutator
	FakeExtender       *FakeExtender
	FakeMountsSearcher *FakeMountsSearcher
	FakeMountRegistrar *FakeMountRegistrar
}

func NewFakeDiskManager() *FakeDiskManager {
	return &FakeDiskManager{
		FakeInspector:      NewFakeInspector(),
		FakePlanner:        NewFakePlanner(),
		FakeMutator:        NewFakeMutator(),
		FakeExtender:       NewFakeExtender(),
		FakeMountsSearcher: NewFakeMountsSearcher(),
		FakeMountRegistrar: NewFakeMountRegistrar(),
	}
}

func (m *FakeDiskManager) GetInspector() boshdisk.Inspector           { return m.FakeInspector }
func (m *FakeDiskManager) GetPlanner() boshdisk.Planner               { return m.FakePlanner }
func (m *FakeDiskManager) GetMutator() boshdisk.Mutator               { return m.FakeMutator }
func (m *FakeDiskManager) GetExtender() boshdisk.Extender             { return m.FakeExtender }
func (m *FakeDiskManager) GetMountsSearcher() boshdisk.MountsSearcher { return m.FakeMountsSearcher }
func (m *FakeDiskManager) GetMountRegistrar() boshdisk.MountRegistrar { return m.FakeMountRegistrar }
