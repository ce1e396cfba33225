package fakes

import (
	boshdisk "github.com/BlueHippoGithub/unattended-pi-setup/platform/disk"
)

type FakeMountsSearcher struct {
	SearchMountsMounts []boshdisk.Mount
	SearchMountsErr    error
}

func NewFakeMountsSearcher() *FakeMountsSearcher {
	return &FakeMountsSearcher{}
}

func (s *FakeMountsSearcher) SearchMounts() ([]boshdisk.Mount, error) {
	return s.SearchMountsMounts, s.SearchMountsErr
}
