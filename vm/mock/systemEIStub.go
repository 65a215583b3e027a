package mock

import (
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// SystemEIStub -
type SystemEIStub struct {
	AddReturnMessageCalled func(msg string)
	GetReturnMessageCalled func() string
	FinishCalled           func(value []byte)
	UseGasCalled           func(gasToConsume uint64) error
	SetStorageCalled       func(key []byte, value []byte)
	GetStorageCalled       func(key []byte) []byte
	AddLogEntryCalled      func(entry *vmcommon.LogEntry)
	CleanCacheCalled       func()
	CreateVMOutputCalled   func() *vmcommon.VMOutput
	SetSCAddressCalled     func(addr []byte)

	ReturnMessage string
}

// AddReturnMessage -
func (s *SystemEIStub) AddReturnMessage(msg string) {
	if s.AddReturnMessageCalled != nil {
		s.AddReturnMessageCalled(msg)
		return
	}
	s.ReturnMessage = msg
}

// GetReturnMessage -
func (s *SystemEIStub) GetReturnMessage() string {
	if s.GetReturnMessageCalled != nil {
		return s.GetReturnMessageCalled()
	}
	return s.ReturnMessage
}

// Finish -
func (s *SystemEIStub) Finish(value []byte) {
	if s.FinishCalled != nil {
		s.FinishCalled(value)
	}
}

// UseGas -
func (s *SystemEIStub) UseGas(gasToConsume uint64) error {
	if s.UseGasCalled != nil {
		return s.UseGasCalled(gasToConsume)
	}
	return nil
}

// SetStorage -
func (s *SystemEIStub) SetStorage(key []byte, value []byte) {
	if s.SetStorageCalled != nil {
		s.SetStorageCalled(key, value)
	}
}

// GetStorage -
func (s *SystemEIStub) GetStorage(key []byte) []byte {
	if s.GetStorageCalled != nil {
		return s.GetStorageCalled(key)
	}
	return nil
}

// AddLogEntry -
func (s *SystemEIStub) AddLogEntry(entry *vmcommon.LogEntry) {
	if s.AddLogEntryCalled != nil {
		s.AddLogEntryCalled(entry)
	}
}

// CleanCache -
func (s *SystemEIStub) CleanCache() {
	if s.CleanCacheCalled != nil {
		s.CleanCacheCalled()
	}
}

// CreateVMOutput -
func (s *SystemEIStub) CreateVMOutput() *vmcommon.VMOutput {
	if s.CreateVMOutputCalled != nil {
		return s.CreateVMOutputCalled()
	}
	return &vmcommon.VMOutput{}
}

// SetSCAddress -
func (s *SystemEIStub) SetSCAddress(addr []byte) {
	if s.SetSCAddressCalled != nil {
		s.SetSCAddressCalled(addr)
	}
}

// IsInterfaceNil -
func (s *SystemEIStub) IsInterfaceNil() bool {
	return s == nil
}
