package testsCommon

import "github.com/iulianpascalau/coverage-graph/services/grapher/common"

// LayoutProviderStub -
type LayoutProviderStub struct {
	LayoutHandler func(name string) (common.LayoutDTO, bool)
	NamesHandler  func() []string
}

// Layout -
func (stub *LayoutProviderStub) Layout(name string) (common.LayoutDTO, bool) {
	if stub.LayoutHandler != nil {
		return stub.LayoutHandler(name)
	}

	return common.LayoutDTO{}, false
}

// Names -
func (stub *LayoutProviderStub) Names() []string {
	if stub.NamesHandler != nil {
		return stub.NamesHandler()
	}

	return make([]string, 0)
}

// IsInterfaceNil -
func (stub *LayoutProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
