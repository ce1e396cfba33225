package fakes

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
)

type FakePlanner struct {
	PlanCalled bool
	PlanTable  boshdisk.PartitionTable
	PlanSizeMB int
	PlanPlan   boshdisk.LayoutPlan
	PlanErr    error
}

func NewFakePlanner() *FakePlanner {
	return &FakePlanner{}
}

func (p *FakePlanner) Plan(table boshdisk.PartitionTable, newPartitionSizeMB int) (boshdisk.LayoutPlan, error) {
	p.PlanCalled = true
	p.PlanTable = table
	p.PlanSizeMB = newPartitionSizeMB
	return p.PlanPlan, p.PlanErr
}
