package fakes

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
)

type FakeExtender struct {
	ExtendCalled bool
	ExtendPlan   boshdisk.LayoutPlan
	ExtendTable  boshdisk.PartitionTable
	ExtendResult boshdisk.ExtensionResult
}

func NewFakeExtender() *FakeExtender {
	return &FakeExtender{}
}

func (e *FakeExtender) Extend(plan boshdisk.LayoutPlan, table boshdisk.PartitionTable) boshdisk.ExtensionResult {
	e.ExtendCalled = true
	e.ExtendPlan = plan
	e.ExtendTable = table
	return e.ExtendResult
}
