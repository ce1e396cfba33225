package platform

import (
	"fmt"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
	boshsettings "github.com/BlueHippoGithub/unattended-pi-setup/settings"
)

const (
	defaultHostname = "raspberrypi"

	// Written to the boot partition so the card can be identified when
	// plugged into any other machine.
	identificationRecordPath = "/boot/card-identification.txt"
)

type linux struct {
	fs          boshsys.FileSystem
	cmdRunner   boshsys.CmdRunner
	diskManager boshdisk.Manager
	logger      boshlog.Logger
	logTag      string
}

func NewLinuxPlatform(
	fs boshsys.FileSystem,
	cmdRunner boshsys.CmdRunner,
	diskManager boshdisk.Manager,
	logger boshlog.Logger,
) Platform {
	return linux{
		fs:          fs,
		cmdRunner:   cmdRunner,
		diskManager: diskManager,
		logger:      logger,
		logTag:      "linuxPlatform",
	}
}

func (p linux) GetDiskManager() boshdisk.Manager { return p.diskManager }

// SetupHostname appends the configured tag to the stock hostname. An empty
// tag leaves the host untouched.
func (p linux) SetupHostname(tag string) error {
	if tag == "" {
		return nil
	}

	hostname := defaultHostname
	if current, err := p.fs.ReadFileString("/etc/hostname"); err == nil {
		if trimmed := strings.TrimSpace(current); trimmed != "" {
			hostname = trimmed
		}
	}

	hostname = fmt.Sprintf("%s-%s", hostname, tag)

	_, _, _, err := p.cmdRunner.RunCommand("raspi-config", "nonint", "do_hostname", hostname)
	if err != nil {
		return bosherr.WrapErrorf(err, "Setting hostname to '%s'", hostname)
	}

	return nil
}

func (p linux) SetupTimezone(timezone string) error {
	_, _, _, err := p.cmdRunner.RunCommand("raspi-config", "nonint", "do_change_timezone", timezone)
	if err != nil {
		return bosherr.WrapErrorf(err, "Setting timezone to '%s'", timezone)
	}

	return nil
}

func (p linux) SetupLocale(locale string) error {
	_, _, _, err := p.cmdRunner.RunCommand("raspi-config", "nonint", "do_change_locale", locale)
	if err != nil {
		return bosherr.WrapErrorf(err, "Setting locale to '%s'", locale)
	}

	return nil
}

// SetupSSH follows the raspi-config convention: 0 enables, 1 disables.
func (p linux) SetupSSH(disabled bool) error {
	setting := "0"
	if disabled {
		setting = "1"
	}

	_, _, _, err := p.cmdRunner.RunCommand("raspi-config", "nonint", "do_ssh", setting)
	if err != nil {
		return bosherr.WrapError(err, "Configuring ssh service")
	}

	return nil
}

func (p linux) WriteIdentificationRecord(settings boshsettings.Settings) error {
	record := fmt.Sprintf(
		"Card number: %s\nSerial: %s\nOS: %s\nKernel: %s\n",
		settings.CardNumber,
		p.deviceSerial(),
		p.distributionDescriptor(),
		p.kernelVersion(),
	)

	err := p.fs.WriteFileString(identificationRecordPath, record)
	if err != nil {
		return bosherr.WrapErrorf(err, "Writing identification record to '%s'", identificationRecordPath)
	}

	return nil
}

func (p linux) deviceSerial() string {
	cpuinfo, err := p.fs.ReadFileString("/proc/cpuinfo")
	if err != nil {
		p.logger.Debug(p.logTag, "Reading /proc/cpuinfo: %s", err.Error())
		return "unknown"
	}

	for _, line := range strings.Split(cpuinfo, "\n") {
		key, value, found := strings.Cut(line, ":")
		if found && strings.TrimSpace(key) == "Serial" {
			return strings.TrimSpace(value)
		}
	}

	return "unknown"
}

func (p linux) distributionDescriptor() string {
	osRelease, err := p.fs.ReadFileString("/etc/os-release")
	if err != nil {
		p.logger.Debug(p.logTag, "Reading /etc/os-release: %s", err.Error())
		return "unknown"
	}

	for _, line := range strings.Split(osRelease, "\n") {
		value, found := strings.CutPrefix(line, "PRETTY_NAME=")
		if found {
			return strings.Trim(strings.TrimSpace(value), `"`)
		}
	}

	return "unknown"
}

func (p linux) kernelVersion() string {
	stdout, _, _, err := p.cmdRunner.RunCommand("uname", "-r")
	if err != nil {
		p.logger.Debug(p.logTag, "Reading kernel version: %s", err.Error())
		return "unknown"
	}

	return strings.TrimSpace(stdout)
}
