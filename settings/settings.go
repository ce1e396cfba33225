package settings

// Defaults applied for every key absent from the provisioning file.
const (
	DefaultPartitionLabel = "data"
	DefaultLocale         = "en_GB.UTF-8"
	DefaultTimezone       = "Europe/London"
)

// Settings is the provisioning configuration resolved once at the start of a
// run. It is passed by value and never modified after resolution.
//
// NewPartitionSizeMB of 0 means no data partition is carved out and the root
// filesystem is simply expanded to fill the card. The practical minimum for a
// usable FAT32 partition is 32 MB; values below that are accepted here and
// will fail at format time.
type Settings struct {
	NewPartitionSizeMB int    `mapstructure:"new_partition_size_MB"`
	NewPartitionLabel  string `mapstructure:"new_partition_label"`

	Locale      string `mapstructure:"new_locale"`
	Timezone    string `mapstructure:"new_timezone"`
	HostnameTag string `mapstructure:"new_hostname_tag"`

	// SSHSetting follows the raspi-config convention: 0 enables the
	// service, 1 disables it.
	SSHSetting int `mapstructure:"new_ssh_setting"`

	WifiCountry  string `mapstructure:"new_wifi_country"`
	WifiSSID     string `mapstructure:"new_wifi_ssid"`
	WifiPassword string `mapstructure:"new_wifi_password"`

	CardNumber string `mapstructure:"sd_card_number"`

	// Extra holds assignments for keys this program does not recognize.
	Extra map[string]string `mapstructure:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		NewPartitionSizeMB: 0,
		NewPartitionLabel:  DefaultPartitionLabel,
		Locale:             DefaultLocale,
		Timezone:           DefaultTimezone,
		HostnameTag:        "",
		SSHSetting:         0,
		WifiCountry:        "GB",
		CardNumber:         "",
		Extra:              map[string]string{},
	}
}

func (s Settings) SSHDisabled() bool {
	return s.SSHSetting == 1
}
