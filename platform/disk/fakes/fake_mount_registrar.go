package fakes

type FakeMountRegistrar struct {
	RegisterCalled         bool
	RegisterPartitionPaths []string
	RegisterLabels         []string
	RegisterErr            error
}

func NewFakeMountRegistrar() *FakeMountRegistrar {
	return &FakeMountRegistrar{}
}

func (r *FakeMountRegistrar) Register(partitionPath, label string) error {
	r.RegisterCalled = true
	r.RegisterPartitionPaths = append(r.RegisterPartitionPaths, partitionPath)
	r.RegisterLabels = append(r.RegisterLabels, label)
	return r.RegisterErr
}
