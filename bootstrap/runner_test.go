package bootstrap_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/clock/fakeclock"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/BlueHippoGithub/unattended-pi-setup/bootstrap"
)

var _ = Describe("Runner", func() {
	var runner bootstrap.Runner

	BeforeEach(func() {
		logger := boshlog.NewLogger(boshlog.LevelNone)
		timeService := fakeclock.NewFakeClock(time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC))
		runner = bootstrap.NewRunner(logger, timeService)
	})

	It("runs every step in order and records a result per step", func() {
		var order []string

		report := runner.Run([]bootstrap.Step{
			{Name: "first", Run: func() error { order = append(order, "first"); return nil }},
			{Name: "second", Run: func() error { order = append(order, "second"); return nil }},
		})

		Expect(order).To(Equal([]string{"first", "second"}))
		Expect(report.Results).To(HaveLen(2))
		Expect(report.Results[0].Name).To(Equal("first"))
		Expect(report.Results[1].Name).To(Equal("second"))
		Expect(report.FailedCount()).To(Equal(0))
		Expect(report.RunID).ToNot(BeEmpty())
	})

	It("continues past failed steps", func() {
		var secondRan bool

		report := runner.Run([]bootstrap.Step{
			{Name: "failing", Run: func() error { return errors.New("fake-step-error") }},
			{Name: "after", Run: func() error { secondRan = true; return nil }},
		})

		Expect(secondRan).To(BeTrue())
		Expect(report.FailedCount()).To(Equal(1))
		Expect(report.Results[0].Failed()).To(BeTrue())
		Expect(report.Results[1].Failed()).To(BeFalse())
	})

	It("counts skipped steps as neither success nor failure", func() {
		report := runner.Run([]bootstrap.Step{
			{Name: "skipped", Run: func() error { return bootstrap.ErrSkipped }},
			{Name: "ok", Run: func() error { return nil }},
		})

		Expect(report.SkippedCount()).To(Equal(1))
		Expect(report.FailedCount()).To(Equal(0))
		Expect(report.Results[0].Skipped).To(BeTrue())
		Expect(report.Results[0].Failed()).To(BeFalse())
	})
})
