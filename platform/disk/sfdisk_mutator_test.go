package disk_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
	fakedisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk/fakes"
)

var _ = Describe("SfdiskMutator", func() {
	var (
		fakeCmdRunner *fakesys.FakeCmdRunner
		fakeRegistrar *fakedisk.FakeMountRegistrar
		mutator       Mutator
		table         PartitionTable
		plan          LayoutPlan
	)

	BeforeEach(func() {
		fakeCmdRunner = fakesys.NewFakeCmdRunner()
		fakeRegistrar = fakedisk.NewFakeMountRegistrar()
		logger := boshlog.NewLogger(boshlog.LevelNone)
		mutator = NewSfdiskMutator(logger, fakeCmdRunner, fakeRegistrar)

		table = PartitionTable{
			DevicePath:   "/dev/mmcblk0",
			TotalSectors: 62333952,
			Entries: []PartitionEntry{
				{Index: 1, StartSector: 8192, EndSector: 532479, Type: "c"},
				{Index: 2, StartSector: 532480, EndSector: 60000000, Type: "83"},
			},
			RootIndex: 2,
		}

		plan = LayoutPlan{
			CreatePartition:   true,
			RootNewEnd:        62129151,
			NewPartitionStart: 62129152,
			NewPartitionEnd:   62333951,
		}
	})

	It("executes the five steps in order against the precomputed boundaries", func() {
		result := mutator.Apply(plan, table, "share")

		Expect(result.FailedCount()).To(Equal(0))
		Expect(result.Outcomes).To(HaveLen(5))

		Expect(fakeCmdRunner.RunCommandsWithInput).To(HaveLen(1))
		Expect(fakeCmdRunner.RunCommandsWithInput[0]).To(Equal([]string{
			"start=62129152, size=204800\n", "sfdisk", "--append", "/dev/mmcblk0",
		}))

		Expect(fakeCmdRunner.RunCommands).To(ContainElement([]string{"sfdisk", "--part-type", "/dev/mmcblk0", "3", "c"}))
		Expect(fakeCmdRunner.RunCommands).To(ContainElement([]string{"partprobe", "/dev/mmcblk0"}))
		Expect(fakeCmdRunner.RunCommands).To(ContainElement([]string{"mkfs.vfat", "-F", "32", "-n", "share", "/dev/mmcblk0p3"}))

		Expect(fakeRegistrar.RegisterPartitionPaths).To(Equal([]string{"/dev/mmcblk0p3"}))
		Expect(fakeRegistrar.RegisterLabels).To(Equal([]string{"share"}))
	})

	It("records step names on every outcome", func() {
		result := mutator.Apply(plan, table, "share")

		names := []string{}
		for _, outcome := range result.Outcomes {
			names = append(names, outcome.Name)
		}

		Expect(names).To(Equal([]string{
			"create-partition",
			"set-partition-type",
			"reread-partition-table",
			"format-partition",
			"register-mount",
		}))
	})

	Context("when creating the partition fails", func() {
		BeforeEach(func() {
			fakeCmdRunner.AddCmdResult(
				"start=62129152, size=204800\n sfdisk --append /dev/mmcblk0",
				fakesys.FakeCmdResult{Error: errors.New("fake-sfdisk-error")},
			)
		})

		It("still runs every later step", func() {
			result := mutator.Apply(plan, table, "share")

			Expect(result.FailedCount()).To(Equal(1))
			Expect(result.Outcomes[0].Failed()).To(BeTrue())
			Expect(result.Outcomes[0].Err.Error()).To(ContainSubstring("fake-sfdisk-error"))

			Expect(fakeCmdRunner.RunCommands).To(ContainElement([]string{"partprobe", "/dev/mmcblk0"}))
			Expect(fakeCmdRunner.RunCommands).To(ContainElement([]string{"mkfs.vfat", "-F", "32", "-n", "share", "/dev/mmcblk0p3"}))
			Expect(fakeRegistrar.RegisterCalled).To(BeTrue())
		})
	})

	Context("when registering the mount fails", func() {
		BeforeEach(func() {
			fakeRegistrar.RegisterErr = errors.New("fake-fstab-error")
		})

		It("reports the failure on the last outcome", func() {
			result := mutator.Apply(plan, table, "share")

			Expect(result.FailedCount()).To(Equal(1))
			Expect(result.Outcomes[4].Name).To(Equal("register-mount"))
			Expect(result.Outcomes[4].Err.Error()).To(ContainSubstring("fake-fstab-error"))
		})
	})

	It("does nothing for an expand-only plan", func() {
		result := mutator.Apply(LayoutPlan{}, table, "share")

		Expect(result.Outcomes).To(BeEmpty())
		Expect(fakeCmdRunner.RunCommands).To(BeEmpty())
		Expect(fakeRegistrar.RegisterCalled).To(BeFalse())
	})
})
