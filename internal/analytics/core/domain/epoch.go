package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// EpochMillis is a timestamp in unix milliseconds. It decodes from a JSON
// number of milliseconds or an RFC 3339 string; null leaves it zero.
type EpochMillis int64

func (m *EpochMillis) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*m = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("timestamp %q: want unix ms or RFC 3339", s)
		}
		*m = EpochMillis(t.UnixMilli())
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("timestamp %s: want unix ms or RFC 3339", b)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("timestamp %s: want integral unix ms", b)
	}
	*m = EpochMillis(v)
	return nil
}

// Time returns the instant in UTC.
func (m EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}
