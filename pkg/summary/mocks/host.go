package mocks

import (
	"testing"

	mock "github.com/stretchr/testify/mock"
)

// Host is a mock of the summary.Host interface.
type Host struct {
	mock.Mock
}

func (m *Host) IsSourceFile(filePath string) bool {
	ret := m.Called(filePath)
	return ret.Get(0).(bool)
}

func (m *Host) ToSummaryFileName(fileName, referringSrcFileName string) (string, error) {
	ret := m.Called(fileName, referringSrcFileName)
	return ret.Get(0).(string), ret.Error(1)
}

func (m *Host) FromSummaryFileName(fileName, referringLibFileName string) (string, error) {
	ret := m.Called(fileName, referringLibFileName)
	return ret.Get(0).(string), ret.Error(1)
}

func (m *Host) LoadSummary(filePath string) (string, bool, error) {
	ret := m.Called(filePath)
	return ret.Get(0).(string), ret.Get(1).(bool), ret.Error(2)
}

// NewHost creates a new Host mock whose expectations are asserted during
// test cleanup.
func NewHost(t *testing.T) *Host {
	m := &Host{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
