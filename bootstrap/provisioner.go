package bootstrap

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshplatform "github.com/BlueHippoGithub/unattended-pi-setup/platform"
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
	boshsettings "github.com/BlueHippoGithub/unattended-pi-setup/settings"
)

// Provisioner assembles and runs the first-boot pipeline: settings
// resolution feeds the disk-layout subsystem, then the host configuration
// collaborators consume the same resolved settings.
type Provisioner struct {
	resolver SettingsResolver
	platform boshplatform.Platform
	runner   Runner
	fs       boshsys.FileSystem
	logger   boshlog.Logger
	logTag   string
}

type SettingsResolver interface {
	Resolve(path string) boshsettings.Settings
}

func NewProvisioner(
	resolver SettingsResolver,
	platform boshplatform.Platform,
	runner Runner,
	fs boshsys.FileSystem,
	logger boshlog.Logger,
) Provisioner {
	return Provisioner{
		resolver: resolver,
		platform: platform,
		runner:   runner,
		fs:       fs,
		logger:   logger,
		logTag:   "provisioner",
	}
}

// Provision runs every step in order and reports per-step results. The
// inspection result and the plan are computed in full before any mutation
// step runs; mutation invalidates the snapshot, so nothing re-reads it.
// An unreadable layout skips only the disk steps.
func (p Provisioner) Provision(devicePath, configPath string) Report {
	resolved := p.resolver.Resolve(configPath)
	diskManager := p.platform.GetDiskManager()

	var (
		table          boshdisk.PartitionTable
		plan           boshdisk.LayoutPlan
		layoutReadable bool
	)

	steps := []Step{
		{Name: "inspect-disk-layout", Run: func() error {
			inspected, err := diskManager.GetInspector().Inspect(devicePath)
			if err != nil {
				return err
			}
			table = inspected
			layoutReadable = true
			return nil
		}},
		{Name: "plan-disk-layout", Run: func() error {
			if !layoutReadable {
				return ErrSkipped
			}
			planned, err := diskManager.GetPlanner().Plan(table, resolved.NewPartitionSizeMB)
			if err != nil {
				// planning failures fall back to plain root expansion
				plan = boshdisk.LayoutPlan{}
				return err
			}
			plan = planned
			return nil
		}},
		{Name: "create-data-partition", Run: func() error {
			if !layoutReadable || !plan.CreatePartition {
				return ErrSkipped
			}
			result := diskManager.GetMutator().Apply(plan, table, resolved.NewPartitionLabel)
			return summarizeOutcomes("mutation", result.FailedCount(), len(result.Outcomes))
		}},
		{Name: "extend-root-filesystem", Run: func() error {
			if !layoutReadable {
				return ErrSkipped
			}
			result := diskManager.GetExtender().Extend(plan, table)
			return summarizeOutcomes("extension", result.FailedCount(), len(result.Outcomes))
		}},
		{Name: "set-hostname", Run: func() error {
			return p.platform.SetupHostname(resolved.HostnameTag)
		}},
		{Name: "set-timezone", Run: func() error {
			return p.platform.SetupTimezone(resolved.Timezone)
		}},
		{Name: "set-locale", Run: func() error {
			return p.platform.SetupLocale(resolved.Locale)
		}},
		{Name: "configure-ssh", Run: func() error {
			return p.platform.SetupSSH(resolved.SSHDisabled())
		}},
		{Name: "write-identification-record", Run: func() error {
			return p.platform.WriteIdentificationRecord(resolved)
		}},
		// Erasing the consumed file keeps the next boot from
		// re-provisioning the card.
		{Name: "remove-provisioning-file", Run: func() error {
			if configPath == "" || !p.fs.FileExists(configPath) {
				return ErrSkipped
			}
			return p.fs.RemoveAll(configPath)
		}},
	}

	report := p.runner.Run(steps)

	p.logger.Info(p.logTag, "Provisioning run %s finished: %d steps, %d failed, %d skipped",
		report.RunID, len(report.Results), report.FailedCount(), report.SkippedCount())

	return report
}

func summarizeOutcomes(kind string, failed, total int) error {
	if failed == 0 {
		return nil
	}
	return bosherr.Errorf("%d of %d %s steps failed", failed, total, kind)
}
