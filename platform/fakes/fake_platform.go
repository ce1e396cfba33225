package fakes

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
	boshsettings "github.com/BlueHippoGithub/unattended-pi-setup/settings"
)

type FakePlatform struct {
	DiskManager boshdisk.Manager

	SetupHostnameCalled bool
	SetupHostnameTag    string
	SetupHostnameErr    error

	SetupTimezoneCalled   bool
	SetupTimezoneTimezone string
	SetupTimezoneErr      error

	SetupLocaleCalled bool
	SetupLocaleLocale string
	SetupLocaleErr    error

	SetupSSHCalled   bool
	SetupSSHDisabled bool
	SetupSSHErr      error

	WriteIdentificationRecordCalled   bool
	WriteIdentificationRecordSettings boshsettings.Settings
	WriteIdentificationRecordErr      error
}

func NewFakePlatform(diskManager boshdisk.Manager) *FakePlatform {
	return &FakePlatform{DiskManager: diskManager}
}

func (p *FakePlatform) GetDiskManager() boshdisk.Manager { return p.DiskManager }

func (p *FakePlatform) SetupHostname(tag string) error {
	p.SetupHostnameCalled = true
	p.SetupHostnameTag = tag
	return p.SetupHostnameErr
}

func (p *FakePlatform) SetupTimezone(timezone string) error {
	p.SetupTimezoneCalled = true
	p.SetupTimezoneTimezone = timezone
	return p.SetupTimezoneErr
}

func (p *FakePlatform) SetupLocale(locale string) error {
	p.SetupLocaleCalled = true
	p.SetupLocaleLocale = locale
	return p.SetupLocaleErr
}

func (p *FakePlatform) SetupSSH(disabled bool) error {
	p.SetupSSHCalled = true
	p.SetupSSHDisabled = disabled
	return p.SetupSSHErr
}

func (p *FakePlatform) WriteIdentificationRecord(settings boshsettings.Settings) error {
	p.WriteIdentificationRecordCalled = true
	p.WriteIdentificationRecordSettings = settings
	return p.WriteIdentificationRecordErr
}
