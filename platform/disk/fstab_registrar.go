package disk

import (
	"fmt"
	"os"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const (
	fstabPath = "/etc/fstab"

	// Ownership of the data partition goes to the first regular user the
	// stock image creates (uid/gid 1000).
	mountUID = 1000
	mountGID = 1000

	mountPointPermissions = os.FileMode(0755)
)

type MountRegistrar interface {
	Register(partitionPath, label string) error
}

type fstabRegistrar struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	fs        boshsys.FileSystem
	logTag    string
}

func NewFstabRegistrar(
	logger boshlog.Logger,
	cmdRunner boshsys.CmdRunner,
	fs boshsys.FileSystem,
) MountRegistrar {
	return fstabRegistrar{
		logger:    logger,
		cmdRunner: cmdRunner,
		fs:        fs,
		logTag:    "FstabRegistrar",
	}
}

// Register appends a persistent mount entry for the freshly formatted
// partition, mounted at a path derived from its volume label. The device
// token is read back from the partition itself via blkid rather than
// guessed from entries already in the table.
func (r fstabRegistrar) Register(partitionPath, label string) error {
	mountPoint := "/" + label

	if err := r.fs.MkdirAll(mountPoint, mountPointPermissions); err != nil {
		return bosherr.WrapErrorf(err, "Creating mount point '%s'", mountPoint)
	}

	contents, err := r.fs.ReadFileString(fstabPath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Reading %s", fstabPath)
	}

	for _, line := range strings.Split(contents, "\n") {
		fields := strings.Fields(line)
		if len(fields) > 1 && fields[1] == mountPoint {
			r.logger.Info(r.logTag, "Mount point '%s' already registered, leaving %s untouched", mountPoint, fstabPath)
			return nil
		}
	}

	entry := fmt.Sprintf("%s  %s  vfat  defaults,uid=%d,gid=%d  0  2\n",
		r.deviceToken(partitionPath), mountPoint, mountUID, mountGID)

	if !strings.HasSuffix(contents, "\n") && contents != "" {
		contents += "\n"
	}

	if err := r.fs.WriteFileString(fstabPath, contents+entry); err != nil {
		return bosherr.WrapErrorf(err, "Appending entry to %s", fstabPath)
	}

	r.logger.Info(r.logTag, "Registered '%s' at '%s'", partitionPath, mountPoint)

	return nil
}

// deviceToken prefers the partition's own PARTUUID so the entry survives
// device renumbering; the raw node path is the fallback when blkid cannot
// report one.
func (r fstabRegistrar) deviceToken(partitionPath string) string {
	stdout, _, _, err := r.cmdRunner.RunCommand("blkid", "-s", "PARTUUID", "-o", "value", partitionPath)
	id := strings.TrimSpace(stdout)
	if err != nil || id == "" {
		r.logger.Debug(r.logTag, "No PARTUUID for '%s', falling back to device path", partitionPath)
		return partitionPath
	}

	return "PARTUUID=" + id
}
