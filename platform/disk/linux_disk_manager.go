package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type Manager interface {
	GetInspector() Inspector
	GetPlanner() Planner
	GetMutator() Mutator
	GetExtender() Extender
	GetMountsSearcher() MountsSearcher
	GetMountRegistrar() MountRegistrar
}

type linuxDiskManager struct {
	inspector      Inspector
	planner        Planner
	mutator        Mutator
	extender       Extender
	mountsSearcher MountsSearcher
	registrar      MountRegistrar
}

func NewLinuxDiskManager(
	logger boshlog.Logger,
	runner boshsys.CmdRunner,
	fs boshsys.FileSystem,
) Manager {
	// /proc/mounts is the most reliable source of mount information
	mountsSearcher := NewProcMountsSearcher(fs)
	registrar := NewFstabRegistrar(logger, runner, fs)

	return linuxDiskManager{
		inspector:      NewSfdiskLayoutInspector(logger, runner, mountsSearcher),
		planner:        NewLayoutPlanner(logger),
		mutator:        NewSfdiskMutator(logger, runner, registrar),
		extender:       NewExt4Extender(logger, runner),
		mountsSearcher: mountsSearcher,
		registrar:      registrar,
	}
}

func (m linuxDiskManager) GetInspector() Inspector           { return m.inspector }
func (m linuxDiskManager) GetPlanner() Planner               { return m.planner }
func (m linuxDiskManager) GetMutator() Mutator               { return m.mutator }
func (m linuxDiskManager) GetExtender() Extender             { return m.extender }
func (m linuxDiskManager) GetMountsSearcher() MountsSearcher { return m.mountsSearcher }
func (m linuxDiskManager) GetMountRegistrar() MountRegistrar { return m.registrar }
