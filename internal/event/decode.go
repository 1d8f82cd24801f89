package event

import (
	"encoding/json"
	"fmt"
)

// PayloadAs returns the payload of evt as T. Events published in process
// carry the payload struct (or a pointer to it); events read back from the
// dead-letter log carry decoded JSON and are converted.
func PayloadAs[T any](evt Event) (T, error) {
	var out T
	switch p := evt.Payload.(type) {
	case nil:
		return out, fmt.Errorf(ErrMsgNilPayloadFormat, evt.Type)
	case T:
		return p, nil
	case *T:
		if p == nil {
			return out, fmt.Errorf(ErrMsgNilPayloadFormat, evt.Type)
		}
		return *p, nil
	}

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return out, fmt.Errorf(ErrMsgPayloadDecodeFormat, evt.Type, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf(ErrMsgPayloadDecodeFormat, evt.Type, err)
	}
	return out, nil
}
