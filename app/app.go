package app

import (
	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshbootstrap "github.com/BlueHippoGithub/unattended-pi-setup/bootstrap"
	boshplatform "github.com/BlueHippoGithub/unattended-pi-setup/platform"
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
	boshsettings "github.com/BlueHippoGithub/unattended-pi-setup/settings"
)

type App interface {
	Setup(args []string) error
	Run() error
}

type app struct {
	logger      boshlog.Logger
	fs          boshsys.FileSystem
	provisioner boshbootstrap.Provisioner
	opts        Options
	logTag      string
}

func New(logger boshlog.Logger) App {
	return &app{
		logger: logger,
		logTag: "App",
	}
}

func (app *app) Setup(args []string) error {
	opts, err := ParseOptions(args)
	if err != nil {
		return bosherr.WrapError(err, "Parsing options")
	}
	app.opts = opts

	level, err := boshlog.Levelify(opts.LogLevel)
	if err != nil {
		return bosherr.WrapError(err, "Parsing log level")
	}
	app.logger = boshlog.NewLogger(level)

	app.fs = boshsys.NewOsFileSystem(app.logger)
	runner := boshsys.NewExecCmdRunner(app.logger)

	diskManager := boshdisk.NewLinuxDiskManager(app.logger, runner, app.fs)
	platform := boshplatform.NewLinuxPlatform(app.fs, runner, diskManager, app.logger)
	resolver := boshsettings.NewResolver(app.fs, app.logger)
	stepRunner := boshbootstrap.NewRunner(app.logger, clock.NewClock())

	app.provisioner = boshbootstrap.NewProvisioner(resolver, platform, stepRunner, app.fs, app.logger)

	return nil
}

// Run performs the provisioning run. Per-step failures are deliberately not
// surfaced as a process failure: the run is best-effort and the report is
// the record of what happened.
func (app *app) Run() error {
	app.logger.Info(app.logTag, "Provisioning device '%s' from '%s'", app.opts.DevicePath, app.opts.ConfigPath)

	report := app.provisioner.Provision(app.opts.DevicePath, app.opts.ConfigPath)

	if failed := report.FailedCount(); failed > 0 {
		app.logger.Error(app.logTag, "%d provisioning steps failed", failed)
	}

	return nil
}
