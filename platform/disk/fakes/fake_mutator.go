package fakes

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
)

type FakeMutator struct {
	ApplyCalled bool
	ApplyPlan   boshdisk.LayoutPlan
	ApplyTable  boshdisk.PartitionTable
	ApplyLabel  string
	ApplyResult boshdisk.MutationResult
}

func NewFakeMutator() *FakeMutator {
	return &FakeMutator{}
}

func (m *FakeMutator) Apply(plan boshdisk.LayoutPlan, table boshdisk.PartitionTable, label string) boshdisk.MutationResult {
	m.ApplyCalled = true
	m.ApplyPlan = plan
	m.ApplyTable = table
	m.ApplyLabel = label
	return m.ApplyResult
}
