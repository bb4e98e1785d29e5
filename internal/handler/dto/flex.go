package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexUint - неотрицательное целое, которое в JSON может прийти числом или строкой ("4").
// Фронтенд берёт ID категорий из ключей JSON-объекта, поэтому часто присылает строки.
type FlexUint uint

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexUint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid unsigned integer %s", data)
	}
	*f = FlexUint(v)
	return nil
}

// ToUintSlice преобразует []FlexUint в []uint
func ToUintSlice(values []FlexUint) []uint {
	out := make([]uint, len(values))
	for i, v := range values {
		out[i] = uint(v)
	}
	return out
}
