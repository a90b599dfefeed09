package sequence

import (
	"encoding/json"
	"fmt"
)

const (
	serializerBasePrefix = '['
	serializerSeparator  = ','
	serializerBaseSuffix = ']'
)

// MarshalJSON encodes the live elements of the sequence as a JSON array. It
// has a value receiver so that sequences held by value encode the same way.
func (s Sequence[T]) MarshalJSON() ([]byte, error) {
	if s.size == 0 {
		return []byte("[]"), nil
	}
	buf := make([]byte, 0, 2+s.size*8)
	buf = append(buf, serializerBasePrefix)
	for i := 0; i < s.size; i++ {
		b, err := json.Marshal(s.buf.data[i])
		if err != nil {
			return nil, fmt.Errorf("cannot encode element %d: %w", i, err)
		}
		buf = append(buf, b...)
		buf = append(buf, serializerSeparator)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf, nil
}

// UnmarshalJSON replaces the contents of the sequence with the elements of a
// JSON array. A JSON null yields an empty sequence. On error the sequence is
// left unchanged.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	b, err := allocate[T](max(len(values), 1))
	if err != nil {
		return err
	}
	copy(b.data, values)
	s.buf = b
	s.size = len(values)
	s.gen++
	return nil
}
