package platform_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/BlueHippoGithub/unattended-pi-setup/platform"
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
	"github.com/BlueHippoGithub/unattended-pi-setup/settings"
)

var _ = Describe("LinuxPlatform", func() {
	var (
		fakeCmdRunner *fakesys.FakeCmdRunner
		fakeFs        *fakesys.FakeFileSystem
		platform      Platform
	)

	BeforeEach(func() {
		fakeCmdRunner = fakesys.NewFakeCmdRunner()
		fakeFs = fakesys.NewFakeFileSystem()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		diskManager := boshdisk.NewLinuxDiskManager(logger, fakeCmdRunner, fakeFs)
		platform = NewLinuxPlatform(fakeFs, fakeCmdRunner, diskManager, logger)
	})

	Describe("SetupHostname", func() {
		It("appends the tag to the current hostname", func() {
			err := fakeFs.WriteFileString("/etc/hostname", "classroom-pi\n")
			Expect(err).ToNot(HaveOccurred())

			Expect(platform.SetupHostname("lab7")).To(Succeed())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"raspi-config", "nonint", "do_hostname", "classroom-pi-lab7"},
			}))
		})

		It("uses the stock name when /etc/hostname is unreadable", func() {
			Expect(platform.SetupHostname("lab7")).To(Succeed())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"raspi-config", "nonint", "do_hostname", "raspberrypi-lab7"},
			}))
		})

		It("leaves the host untouched for an empty tag", func() {
			Expect(platform.SetupHostname("")).To(Succeed())
			Expect(fakeCmdRunner.RunCommands).To(BeEmpty())
		})
	})

	Describe("SetupTimezone", func() {
		It("delegates to raspi-config", func() {
			Expect(platform.SetupTimezone("Europe/Berlin")).To(Succeed())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"raspi-config", "nonint", "do_change_timezone", "Europe/Berlin"},
			}))
		})

		It("wraps command failures", func() {
			fakeCmdRunner.AddCmdResult(
				"raspi-config nonint do_change_timezone Mars/Olympus",
				fakesys.FakeCmdResult{Error: errors.New("fake-raspi-config-error")},
			)

			err := platform.SetupTimezone("Mars/Olympus")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("fake-raspi-config-error"))
		})
	})

	Describe("SetupLocale", func() {
		It("delegates to raspi-config", func() {
			Expect(platform.SetupLocale("de_DE.UTF-8")).To(Succeed())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"raspi-config", "nonint", "do_change_locale", "de_DE.UTF-8"},
			}))
		})
	})

	Describe("SetupSSH", func() {
		It("enables the service for disabled=false", func() {
			Expect(platform.SetupSSH(false)).To(Succeed())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"raspi-config", "nonint", "do_ssh", "0"},
			}))
		})

		It("disables the service for disabled=true", func() {
			Expect(platform.SetupSSH(true)).To(Succeed())

			Expect(fakeCmdRunner.RunCommands).To(Equal([][]string{
				{"raspi-config", "nonint", "do_ssh", "1"},
			}))
		})
	})

	Describe("WriteIdentificationRecord", func() {
		BeforeEach(func() {
			err := fakeFs.WriteFileString("/proc/cpuinfo", `processor	: 0
model name	: ARMv7 Processor rev 3 (v7l)
Serial		: 10000000abcdef12
`)
			Expect(err).ToNot(HaveOccurred())

			err = fakeFs.WriteFileString("/etc/os-release", `PRETTY_NAME="Raspbian GNU/Linux 10 (buster)"
ID=raspbian
`)
			Expect(err).ToNot(HaveOccurred())

			fakeCmdRunner.AddCmdResult("uname -r", fakesys.FakeCmdResult{Stdout: "5.10.17-v7l+\n"})
		})

		It("writes catalogue number, serial, distribution and kernel to the boot area", func() {
			resolved := settings.DefaultSettings()
			resolved.CardNumber = "TMS-0042"

			Expect(platform.WriteIdentificationRecord(resolved)).To(Succeed())

			record, err := fakeFs.ReadFileString("/boot/card-identification.txt")
			Expect(err).ToNot(HaveOccurred())

			Expect(record).To(Equal(`Card number: TMS-0042
Serial: 10000000abcdef12
OS: Raspbian GNU/Linux 10 (buster)
Kernel: 5.10.17-v7l+
`))
		})

		It("records unknown for sources it cannot read", func() {
			err := fakeFs.RemoveAll("/proc/cpuinfo")
			Expect(err).ToNot(HaveOccurred())

			Expect(platform.WriteIdentificationRecord(settings.DefaultSettings())).To(Succeed())

			record, err := fakeFs.ReadFileString("/boot/card-identification.txt")
			Expect(err).ToNot(HaveOccurred())
			Expect(record).To(ContainSubstring("Serial: unknown"))
		})
	})
})
