package settings

import (
	"strconv"
	"strings"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/mitchellh/mapstructure"
)

// integerKeys are validated before decoding so that a single malformed value
// is skipped instead of failing the whole decode.
var integerKeys = map[string]bool{
	"new_partition_size_MB": true,
	"new_ssh_setting":       true,
}

var recognizedKeys = map[string]bool{
	"new_partition_size_MB": true,
	"new_partition_label":   true,
	"new_locale":            true,
	"new_timezone":          true,
	"new_hostname_tag":      true,
	"new_ssh_setting":       true,
	"new_wifi_country":      true,
	"new_wifi_ssid":         true,
	"new_wifi_password":     true,
	"sd_card_number":        true,
}

type Resolver struct {
	fs     boshsys.FileSystem
	logger boshlog.Logger
	logTag string
}

func NewResolver(fs boshsys.FileSystem, logger boshlog.Logger) Resolver {
	return Resolver{
		fs:     fs,
		logger: logger,
		logTag: "settingsResolver",
	}
}

// Resolve merges the assignments found at path over the built-in defaults.
// It never fails: a missing, empty or entirely commented-out file yields the
// defaults, and malformed lines or values are skipped.
func (r Resolver) Resolve(path string) Settings {
	resolved := DefaultSettings()

	if path == "" || !r.fs.FileExists(path) {
		r.logger.Info(r.logTag, "No provisioning file at '%s', using defaults", path)
		return resolved
	}

	contents, err := r.fs.ReadFileString(path)
	if err != nil {
		r.logger.Error(r.logTag, "Reading provisioning file '%s': %s", path, err.Error())
		return resolved
	}

	assignments := parseAssignments(contents)

	known := map[string]interface{}{}
	for key, value := range assignments {
		if !recognizedKeys[key] {
			resolved.Extra[key] = value
			continue
		}
		if integerKeys[key] {
			if _, err := strconv.Atoi(value); err != nil {
				r.logger.Error(r.logTag, "Skipping non-numeric value '%s' for key '%s'", value, key)
				continue
			}
		}
		known[key] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &resolved,
	})
	if err != nil {
		r.logger.Error(r.logTag, "Building settings decoder: %s", err.Error())
		return resolved
	}

	if err := decoder.Decode(known); err != nil {
		r.logger.Error(r.logTag, "Decoding provisioning file '%s': %s", path, err.Error())
	}

	r.logger.Debug(r.logTag, "Resolved settings from '%s' (%d assignments, %d unrecognized)", path, len(assignments), len(resolved.Extra))

	return resolved
}

func parseAssignments(contents string) map[string]string {
	assignments := map[string]string{}

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := splitAssignment(line)
		if !ok {
			continue
		}

		if idx := strings.Index(value, "#"); idx >= 0 {
			value = value[:idx]
		}
		value = unquote(strings.TrimSpace(value))

		assignments[key] = value
	}

	return assignments
}

func splitAssignment(line string) (string, string, bool) {
	sep := strings.Index(line, "=")
	if sep < 0 {
		sep = strings.IndexAny(line, " \t")
	}
	if sep <= 0 {
		return "", "", false
	}

	key := strings.TrimSpace(line[:sep])
	if key == "" {
		return "", "", false
	}

	return key, line[sep+1:], true
}

// unquote strips at most one layer of matching single or double quotes.
// Mismatched quotes are left untouched.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}

	first, last := value[0], value[len(value)-1]
	if first != last {
		return value
	}
	if first != '"' && first != '\'' {
		return value
	}

	return value[1 : len(value)-1]
}
