package app

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/spf13/pflag"
)

type Options struct {
	ConfigPath string
	DevicePath string
	LogLevel   string
}

func ParseOptions(args []string) (Options, error) {
	var opts Options

	flags := pflag.NewFlagSet("unattended-pi-setup", pflag.ContinueOnError)
	flags.StringVar(&opts.ConfigPath, "config", "/boot/unattended-setup.conf", "Path to the provisioning key/value file")
	flags.StringVar(&opts.DevicePath, "device", "/dev/mmcblk0", "Block device holding the boot and root partitions")
	flags.StringVar(&opts.LogLevel, "log-level", "debug", "Log level (debug|info|warn|error|none)")

	if err := flags.Parse(args[1:]); err != nil {
		return Options{}, bosherr.WrapError(err, "Parsing flags")
	}

	return opts, nil
}
