package mock

import (
	"encoding/json"
	"errors"
)

// MarshalizerMock that will be used for testing
type MarshalizerMock struct {
	Fail bool
}

// Marshal converts the input object in a slice of bytes
func (mm *MarshalizerMock) Marshal(obj interface{}) ([]byte, error) {
	if mm.Fail {
		return nil, errors.New("MarshalizerMock generic error")
	}
	if obj == nil {
		return nil, errors.New("nil object to serialize from")
	}

	return json.Marshal(obj)
}

// Unmarshal applies the serialized values over an instantiated object
func (mm *MarshalizerMock) Unmarshal(obj interface{}, buff []byte) error {
	if mm.Fail {
		return errors.New("MarshalizerMock generic error")
	}
	if obj == nil {
		return errors.New("nil object to serialize to")
	}
	if len(buff) == 0 {
		return errors.New("empty data to deserialize from")
	}

	return json.Unmarshal(buff, obj)
}

// IsInterfaceNil returns true if there is no value under the interface
func (mm *MarshalizerMock) IsInterfaceNil() bool {
	return mm == nil
}
