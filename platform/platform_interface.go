package platform

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
	boshsettings "github.com/BlueHippoGithub/unattended-pi-setup/settings"
)

// Platform covers the host configuration the provisioning run performs
// outside the disk-layout subsystem. Every operation is an idempotent-in-
// effect consumer of the resolved settings.
type Platform interface {
	SetupHostname(tag string) error
	SetupTimezone(timezone string) error
	SetupLocale(locale string) error
	SetupSSH(disabled bool) error
	WriteIdentificationRecord(settings boshsettings.Settings) error

	GetDiskManager() boshdisk.Manager
}
