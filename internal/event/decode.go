package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload of an event as T. Payloads published on the
// MemoryBus arrive as T or *T; anything else, such as a map decoded from a
// snapshot frame, is converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayloadFormat, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf(ErrMsgDecodePayloadFormat, err)
	}
	return result, nil
}
